package countdown

import (
	"context"
	"time"
)

// Clock provides the current time and a cancellable sleep.
type Clock interface {
	// Now returns the current time. Durations between two readings must be
	// measured on a monotonic clock.
	Now() time.Time
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the
	// latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct{}

// SystemClock returns a Clock backed by the time package.
// time.Now carries a monotonic reading, which Time.Sub uses.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
