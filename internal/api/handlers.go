package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/kateryna-senchenko/textencryptor/pkg/buildinfo"
	apperrors "github.com/kateryna-senchenko/textencryptor/pkg/errors"
	"github.com/kateryna-senchenko/textencryptor/pkg/pipeline"
)

// encryptRequest is the body of POST /v1/encrypt. Text is a pointer so that a
// missing or null field can be told apart from an empty string.
type encryptRequest struct {
	Text *string `json:"text"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleEncrypt(w http.ResponseWriter, r *http.Request) {
	var req encryptRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, r, apperrors.New(apperrors.ErrCodeInvalidInput, "request body exceeds %d bytes", maxErr.Limit))
			return
		}
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "malformed JSON body"))
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		s.writeError(w, r, apperrors.New(apperrors.ErrCodeInvalidInput, "request body must hold a single JSON object"))
		return
	}

	res, err := s.runner.Encrypt(r.Context(), pipeline.Options{Text: req.Text})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// statusFor maps an error code to an HTTP status.
func statusFor(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidArgument, apperrors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case apperrors.ErrCodeInvalidState:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	status := statusFor(code)
	msg := apperrors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "id", requestIDFromContext(r.Context()), "err", err)
		msg = "internal error"
	}
	writeJSON(w, status, errorBody{Error: errorDetail{Code: string(code), Message: msg}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
