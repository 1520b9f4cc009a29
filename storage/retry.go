package storage

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// retry calls fn up to attempts times, waiting backoff*(i+1) between tries.
// ErrNotFound and context errors are returned immediately.
func retry[T any](ctx context.Context, attempts int, backoff time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		if errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return zero, err
		}
		lastErr = err

		if i == attempts-1 {
			break
		}

		timer := time.NewTimer(backoff * time.Duration(i+1))
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
