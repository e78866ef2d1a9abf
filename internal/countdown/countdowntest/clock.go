// Package countdowntest provides a manual clock for countdown tests.
package countdowntest

import (
	"context"
	"sync"
	"time"
)

// Clock is a countdown.Clock whose time only moves when Sleep or Advance is
// called. Sleep returns immediately.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps int

	// Step overrides how far each Sleep advances the clock.
	// Zero advances by the requested duration.
	Step time.Duration

	// OnSleep, if set, is called with the 1-based sleep count before the
	// context is checked. Tests use it to cancel mid-run.
	OnSleep func(n int)
}

// New returns a Clock starting at start.
func New(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the current fake time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Sleep advances the clock unless ctx is done.
func (c *Clock) Sleep(ctx context.Context, d time.Duration) error {
	c.mu.Lock()
	c.sleeps++
	n := c.sleeps
	c.mu.Unlock()

	if c.OnSleep != nil {
		c.OnSleep(n)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if c.Step != 0 {
		d = c.Step
	}
	c.Advance(d)
	return nil
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Sleeps returns how many times Sleep was called.
func (c *Clock) Sleeps() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sleeps
}
