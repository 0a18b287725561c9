// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
// A non-positive duration only checks the context.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
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

// Remaining returns how long to wait after a run that began at started so
// that runs start every period. It is zero when the run overran the period.
func Remaining(started time.Time, period time.Duration, now time.Time) time.Duration {
	left := period - now.Sub(started)
	if left < 0 {
		return 0
	}
	return left
}
