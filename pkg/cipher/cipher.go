package cipher

import (
	"context"
	"io"
	"time"

	"github.com/kateryna-senchenko/textencryptor/pkg/errors"
	"github.com/kateryna-senchenko/textencryptor/pkg/observability"
)

// Encryptor transforms plain text into its encrypted form.
type Encryptor interface {
	Encrypt(text string) (string, error)
}

// Square is the square-code [Encryptor]. The zero value is ready to use.
type Square struct{}

var _ Encryptor = Square{}

// Encrypt implements [Encryptor] by calling the package-level [Encrypt].
func (Square) Encrypt(text string) (string, error) {
	return Encrypt(text)
}

// Encrypt returns the square-code encryption of text.
//
// It fails with INVALID_STATE when text contains nothing but whitespace.
// On success the result holds every non-whitespace rune of text plus
// columns-1 separating spaces.
func Encrypt(text string) (string, error) {
	return EncryptContext(context.Background(), text)
}

// EncryptContext is like [Encrypt] but passes ctx to the registered cipher
// hooks. The context is not used for cancellation.
func EncryptContext(ctx context.Context, text string) (string, error) {
	start := time.Now()
	normalized := Normalize(text)
	length := len([]rune(normalized))

	hooks := observability.Cipher()
	hooks.OnEncryptStart(ctx, length)

	grid, err := NewGrid(normalized)
	if err != nil {
		hooks.OnEncryptComplete(ctx, length, time.Since(start), err)
		return "", err
	}
	hooks.OnGridBuilt(ctx, grid.Rows(), grid.Columns(), grid.Len())

	out := grid.ReadColumns()
	hooks.OnEncryptComplete(ctx, length, time.Since(start), nil)
	return out, nil
}

// EncryptReader reads all of r and encrypts it. A nil reader fails with
// INVALID_ARGUMENT; read failures are reported as INVALID_INPUT.
func EncryptReader(r io.Reader) (string, error) {
	if r == nil {
		return "", errors.New(errors.ErrCodeInvalidArgument, "input should not be null")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read input")
	}
	return Encrypt(string(data))
}
