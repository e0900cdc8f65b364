// Package resilience retries operations that fail for transient reasons,
// such as an npm registry timing out mid-install.
package resilience

import (
	"context"
	"errors"
	"time"
)

// Policy defines how an operation is retried.
type Policy struct {
	// Retries is the number of attempts after the first one.
	Retries int
	// BaseDelay is the wait before the first retry. It doubles per retry.
	BaseDelay time.Duration
	// MaxDelay caps the wait between retries.
	MaxDelay time.Duration
}

const (
	defaultBaseDelay = 100 * time.Millisecond
	defaultMaxDelay  = 30 * time.Second
)

// permanentError marks an error that must not be retried.
type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent wraps err so Do returns it without retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// Do calls fn until it succeeds, returns a permanent error, or the policy
// is exhausted. attempt starts at 0. The last error is returned unwrapped
// from Permanent.
func Do(ctx context.Context, p Policy, fn func(attempt int) error) error {
	retries := max(p.Retries, 0)
	var lastErr error
	for attempt := range retries + 1 {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(attempt)
		if err == nil {
			return nil
		}
		lastErr = err

		var perm *permanentError
		if errors.As(err, &perm) {
			return perm.err
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		if attempt == retries {
			break
		}

		t := time.NewTimer(Backoff(attempt, p.BaseDelay, p.MaxDelay))
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
	return lastErr
}

// Backoff returns base * 2^attempt capped at maxDelay. Zero values use
// 100ms and 30s.
func Backoff(attempt int, base, maxDelay time.Duration) time.Duration {
	if base <= 0 {
		base = defaultBaseDelay
	}
	if maxDelay <= 0 {
		maxDelay = defaultMaxDelay
	}
	delay := base
	for range attempt {
		delay *= 2
		if delay >= maxDelay {
			return maxDelay
		}
	}
	return min(delay, maxDelay)
}
