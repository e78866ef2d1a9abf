package countdown

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/raphi011/pomdot/internal/stage"
)

// Options controls how stages are rendered.
type Options struct {
	Compact  bool // skip the per-stage header
	BarWidth int
	Bell     bool // ring between stages
}

// Runner executes stages, writing the countdown to w.
type Runner struct {
	w     io.Writer
	opts  Options
	clock Clock
}

// New creates a Runner. A nil clock uses SystemClock.
func New(w io.Writer, opts Options, clock Clock) *Runner {
	if clock == nil {
		clock = SystemClock()
	}
	return &Runner{w: w, opts: opts, clock: clock}
}

// RunAll runs stages in order and stops at the first error.
func (r *Runner) RunAll(ctx context.Context, stages []stage.Stage) error {
	for i, s := range stages {
		if err := r.Run(ctx, s, i == len(stages)-1); err != nil {
			return err
		}
	}
	return nil
}

// Run counts down a single stage and blocks until it completes or ctx is
// cancelled. last suppresses the transition bell.
func (r *Runner) Run(ctx context.Context, s stage.Stage, last bool) error {
	// start doubles as the wall-clock display time and the monotonic
	// reference for elapsed time.
	start := r.clock.Now()
	total := int(s.Duration / time.Second)

	if r.opts.Compact {
		fmt.Fprintln(r.w)
	} else {
		end := start.Add(s.Duration)
		fmt.Fprintf(r.w, "\nStage:     %s\n", s.Label)
		fmt.Fprintf(r.w, "Start:     %s\n", start.Format(time.TimeOnly))
		fmt.Fprintf(r.w, "End:       %s\n", end.Format(time.TimeOnly))
	}

	for {
		elapsed := max(int(r.clock.Now().Sub(start)/time.Second), 0)
		remaining := max(total-elapsed, 0)
		r.render(s.Label, remaining, total)

		if remaining == 0 {
			if r.opts.Bell && !last {
				fmt.Fprint(r.w, Bell)
			}
			break
		}

		if err := r.clock.Sleep(ctx, time.Second); err != nil {
			return err
		}
	}

	fmt.Fprintln(r.w)
	return nil
}

// render redraws the countdown line in place.
func (r *Runner) render(label string, remaining, total int) {
	fmt.Fprintf(r.w, "%sStage: %s | Remaining: %s %s",
		ClearLine, label, FormatHHMMSS(remaining), BuildBar(remaining, total, r.opts.BarWidth))
}
