package settings

import (
	"errors"
	"fmt"
	"strings"
)

// Flag errors.
var (
	ErrConflictingFlags = errors.New("conflicting flags")
	ErrInvalidTimeArgs  = errors.New("invalid --time arguments")
)

// Mode selects what a pomdot invocation does.
type Mode int

const (
	ModeRun Mode = iota
	ModeWriteConfig
	ModeSaveConfig
	ModeStatus
)

func (m Mode) String() string {
	switch m {
	case ModeWriteConfig:
		return "write-config"
	case ModeSaveConfig:
		return "save-config"
	case ModeStatus:
		return "status"
	default:
		return "run"
	}
}

// Flags holds explicitly supplied command-line values.
// Nil means the flag was not given.
type Flags struct {
	Time     []string // normalized FOCUS, REST, REPEAT
	Compact  *bool
	NoBell   *bool
	BarWidth *int

	WriteConfig bool
	SaveConfig  bool
	Status      bool
	Force       bool
}

// HasTimerOptions reports whether any timer setting was given explicitly.
func (f Flags) HasTimerOptions() bool {
	return f.Time != nil || f.Compact != nil || f.NoBell != nil || f.BarWidth != nil
}

// Mode validates the mode switches and returns the selected mode.
func (f Flags) Mode() (Mode, error) {
	switch {
	case f.Force && !f.WriteConfig:
		return ModeRun, fmt.Errorf("%w: --force can only be used with --write-config", ErrConflictingFlags)
	case f.WriteConfig && f.SaveConfig:
		return ModeRun, fmt.Errorf("%w: --write-config and --save-config cannot be used together", ErrConflictingFlags)
	case f.Status && f.WriteConfig:
		return ModeRun, fmt.Errorf("%w: --status and --write-config cannot be used together", ErrConflictingFlags)
	case f.Status && f.SaveConfig:
		return ModeRun, fmt.Errorf("%w: --status and --save-config cannot be used together", ErrConflictingFlags)
	case f.WriteConfig && f.HasTimerOptions():
		return ModeRun, fmt.Errorf("%w: --write-config cannot be combined with timer options", ErrConflictingFlags)
	case f.WriteConfig:
		return ModeWriteConfig, nil
	case f.SaveConfig:
		return ModeSaveConfig, nil
	case f.Status:
		return ModeStatus, nil
	}
	return ModeRun, nil
}

// NormalizeTime accepts either three tokens (FOCUS REST REPEAT) or a single
// comma-separated token (FOCUS,REST,REPEAT) and returns the trimmed parts.
// Returns nil for nil input (flag not given).
func NormalizeTime(tokens []string) ([]string, error) {
	if tokens == nil {
		return nil, nil
	}

	parts := tokens
	if len(tokens) == 1 && strings.Contains(tokens[0], ",") {
		parts = strings.Split(tokens[0], ",")
	}

	values := make([]string, len(parts))
	for i, p := range parts {
		values[i] = strings.TrimSpace(p)
	}

	if len(values) != 3 || values[0] == "" || values[1] == "" || values[2] == "" {
		return nil, fmt.Errorf("%w: -t/--time must be either three values (FOCUS REST REPEAT) or one comma-separated value (FOCUS,REST,REPEAT)", ErrInvalidTimeArgs)
	}

	return values, nil
}
