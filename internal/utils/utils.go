package utils

import (
	"context"
	"time"
)

// WaitFor blocks for d or until ctx is done, whichever comes first.
func WaitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Backoff returns unit * 2^attempt for a zero-based attempt index.
func Backoff(unit time.Duration, attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	return unit << uint(attempt)
}
