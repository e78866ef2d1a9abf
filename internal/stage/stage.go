// Package stage builds the ordered focus/rest sequence for a timer run.
package stage

import (
	"fmt"
	"time"
)

// Stage is one timed phase of a run.
type Stage struct {
	Label    string
	Duration time.Duration
}

// Build returns repeat+1 cycles of a focus stage followed by a rest stage.
// Labels carry the 1-based cycle and the cycle count, e.g. "Focus 2/3".
// The returned slice is complete before any stage runs and is not modified
// afterwards.
func Build(focus, rest time.Duration, repeat int) []Stage {
	cycles := repeat + 1
	stages := make([]Stage, 0, 2*cycles)
	for c := 1; c <= cycles; c++ {
		stages = append(stages,
			Stage{Label: fmt.Sprintf("Focus %d/%d", c, cycles), Duration: focus},
			Stage{Label: fmt.Sprintf("Rest %d/%d", c, cycles), Duration: rest},
		)
	}
	return stages
}

// Total returns the combined duration of stages.
func Total(stages []Stage) time.Duration {
	var d time.Duration
	for _, s := range stages {
		d += s.Duration
	}
	return d
}
