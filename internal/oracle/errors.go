package oracle

import (
	"fmt"
	"time"
)

// ErrRateLimit indicates the engine returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("oracle rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrUnavailable indicates the engine is down or unreachable. Callers
// catch this and fall back to local comparison.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("oracle unavailable: %v", e.Err)
	}
	return "oracle unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResult indicates the engine answered with content that
// does not hold a usable result.
type ErrInvalidResult struct {
	Content string
	Err     error
}

func (e *ErrInvalidResult) Error() string {
	return fmt.Sprintf("invalid oracle result: %v", e.Err)
}

func (e *ErrInvalidResult) Unwrap() error { return e.Err }
