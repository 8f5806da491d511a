package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/kateryna-senchenko/textencryptor/pkg/observability"
)

// logHooks reports cipher, cache and HTTP events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.CipherHooks = (*logHooks)(nil)
	_ observability.CacheHooks  = (*logHooks)(nil)
	_ observability.HTTPHooks   = (*logHooks)(nil)
)

func (h *logHooks) OnEncryptStart(_ context.Context, length int) {
	h.logger.Debug("normalized input", "length", length)
}

func (h *logHooks) OnGridBuilt(_ context.Context, rows, columns, length int) {
	h.logger.Debug("built grid", "rows", rows, "columns", columns, "filled", length, "empty", rows*columns-length)
}

func (h *logHooks) OnEncryptComplete(_ context.Context, length int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("encryption failed", "length", length, "err", err)
		return
	}
	h.logger.Debug("encryption complete", "length", length, "duration", d)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *logHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("http request", "method", method, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "path", path, "status", status, "duration", d)
}
