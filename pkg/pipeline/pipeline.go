// Package pipeline runs encryption requests with caching and logging.
//
// The cipher package is a pure function; this package is where the CLI and
// the HTTP API share everything around it: input validation, cache lookup,
// result caching, timing and structured logs. Centralizing it keeps the two
// entry points consistent.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	text := "chill out"
//	result, err := runner.Encrypt(ctx, pipeline.Options{Text: &text})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Ciphertext) // clu hlt io
package pipeline

import (
	"time"

	"github.com/kateryna-senchenko/textencryptor/pkg/errors"
)

// Options configures a single encryption request.
type Options struct {
	// Text is the input. A nil pointer means no input was supplied and fails
	// with INVALID_ARGUMENT; a pointer to blank text fails with INVALID_STATE.
	Text *string

	// Refresh skips the cache lookup and recomputes the ciphertext. The fresh
	// result is still written back.
	Refresh bool

	// TTL overrides the cache lifetime. Zero uses cache.TTLCipher.
	TTL time.Duration
}

// Validate checks that the options can be executed.
func (o Options) Validate() error {
	if o.Text == nil {
		return errors.New(errors.ErrCodeInvalidArgument, "input should not be null")
	}
	if o.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "ttl cannot be negative")
	}
	return nil
}

// Result is the outcome of an encryption request.
type Result struct {
	Ciphertext string        `json:"ciphertext"`
	Rows       int           `json:"rows"`
	Columns    int           `json:"columns"`
	Length     int           `json:"length"` // normalized length in runes
	CacheHit   bool          `json:"cached"`
	Duration   time.Duration `json:"-"`
}
