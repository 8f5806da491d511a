package cache

import (
	"context"
	"errors"
	"time"
)

// RetryableError marks a failure worth another attempt, such as a refused
// connection while Redis is still starting.
type RetryableError struct{ Err error }

// Retryable marks err for RetryWithBackoff. A nil err stays nil so callers
// can wrap a result unconditionally.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err, or anything it wraps, was marked Retryable.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// connectAttempts bounds how long a backend gets to come up.
const connectAttempts = 3

// retryDelay is the pause before the second attempt; each later pause doubles.
var retryDelay = 200 * time.Millisecond

// RetryWithBackoff calls fn until it succeeds, returns an error not marked
// Retryable, or connectAttempts calls have failed. The last error is returned.
// Cancelling ctx between attempts returns ctx.Err().
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	delay := retryDelay
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !IsRetryable(err) || attempt == connectAttempts {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
}
