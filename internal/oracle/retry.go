package oracle

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// RetryOracle is a decorator that retries transient errors with
// exponential backoff and jitter.
type RetryOracle struct {
	inner  Oracle
	config RetryConfig
}

// WithRetry wraps an Oracle with retry logic.
func WithRetry(o Oracle, cfg RetryConfig) Oracle {
	return &RetryOracle{inner: o, config: cfg}
}

func (r *RetryOracle) Evaluate(ctx context.Context, op Operation, expression string) (string, error) {
	var lastErr error
	invalidRetried := false

	for attempt := range r.config.MaxAttempts {
		result, err := r.inner.Evaluate(ctx, op, expression)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !shouldRetry(err, &invalidRetried) {
			return "", err
		}

		// Last attempt: don't sleep, just return the error.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt, err)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(wait):
		}
	}

	return "", lastErr
}

func (r *RetryOracle) Name() string { return r.inner.Name() }

// shouldRetry determines if an error is retryable.
func shouldRetry(err error, invalidRetried *bool) bool {
	// Context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// An invalid result gets one retry; the engine may have hiccuped.
	var invalid *ErrInvalidResult
	if errors.As(err, &invalid) {
		if *invalidRetried {
			return false
		}
		*invalidRetried = true
		return true
	}

	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return true
	}
	var unavail *ErrUnavailable
	if errors.As(err, &unavail) {
		return true
	}

	// Other errors (network, etc.) are treated as transient.
	return true
}

// backoff computes the wait duration for the given attempt.
func (r *RetryOracle) backoff(attempt int, err error) time.Duration {
	// Respect RetryAfter for rate limits.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
