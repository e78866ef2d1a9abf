package main

import (
	"context"
	"fmt"

	"github.com/raphi011/pomdot/internal/countdown"
	"github.com/raphi011/pomdot/internal/log"
	"github.com/raphi011/pomdot/internal/output"
	"github.com/raphi011/pomdot/internal/settings"
	"github.com/raphi011/pomdot/internal/stage"
	"github.com/raphi011/pomdot/internal/ui/styles"
)

// runTimer counts down every stage and prints the completion notice.
func runTimer(ctx context.Context, s settings.Settings, clock countdown.Clock) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	stages := stage.Build(s.Focus, s.Rest, s.Repeat)
	l.Debug("starting run", "stages", len(stages), "total", stage.Total(stages))

	out.Println(banner())

	if err := countdownStages(ctx, out, s, stages, clock); err != nil {
		return err
	}

	out.Println()
	fmt.Fprint(out.Styled(), styles.SuccessStyle.Render("Done!"))
	if !s.NoBell {
		out.Print(countdown.Bell)
	}
	out.Println()
	return nil
}

// countdownStages runs stages with the cursor hidden. The cursor is restored
// however the run ends.
func countdownStages(ctx context.Context, out *output.Printer, s settings.Settings, stages []stage.Stage, clock countdown.Clock) error {
	restore := countdown.HideCursor(out.Writer())
	defer restore()

	r := countdown.New(out.Writer(), countdown.Options{
		Compact:  s.Compact,
		BarWidth: s.BarWidth,
		Bell:     !s.NoBell,
	}, clock)

	err := r.RunAll(ctx, stages)
	if err != nil && ctx.Err() != nil {
		log.FromContext(ctx).Debug("run interrupted", "reason", context.Cause(ctx))
		out.Println()
		fmt.Fprint(out.Styled(), styles.WarningStyle.Render("Cancelled."))
		out.Println()
		return errCancelled
	}
	return err
}
