package settings

import (
	"strconv"
	"strings"
	"time"

	"github.com/raphi011/pomdot/internal/config"
	"github.com/raphi011/pomdot/internal/parse"
)

// Source identifies which tier supplied a resolved value.
type Source string

const (
	SourceCLI     Source = "cli"
	SourceConfig  Source = "config"
	SourceDefault Source = "default"
)

// Field is a resolved value tagged with its source.
type Field[T any] struct {
	Value  T
	Source Source
}

// Resolved holds the per-field resolution result before validation.
type Resolved struct {
	Time     Field[[3]string]
	Compact  Field[bool]
	NoBell   Field[bool]
	BarWidth Field[int]
}

// Settings is a fully validated timer configuration.
type Settings struct {
	Time     [3]string // trimmed raw values, for display and saving
	Focus    time.Duration
	Rest     time.Duration
	Repeat   int
	Compact  bool
	NoBell   bool
	BarWidth int
}

// Values converts s to the config file representation.
func (s Settings) Values() config.Values {
	return config.Values{
		Time:     s.Time,
		Compact:  s.Compact,
		NoBell:   s.NoBell,
		BarWidth: s.BarWidth,
	}
}

// pick returns the first set value in precedence order.
func pick[T any](cli, file *T, def T) Field[T] {
	if cli != nil {
		return Field[T]{Value: *cli, Source: SourceCLI}
	}
	if file != nil {
		return Field[T]{Value: *file, Source: SourceConfig}
	}
	return Field[T]{Value: def, Source: SourceDefault}
}

// cliTime converts normalized --time values to a fixed triple.
func cliTime(f Flags) *[3]string {
	if len(f.Time) != 3 {
		return nil
	}
	t := [3]string{f.Time[0], f.Time[1], f.Time[2]}
	return &t
}

// Resolve applies CLI > config file > default to every field.
func Resolve(f Flags, raw config.RawConfig) Resolved {
	def := config.Defaults()
	return Resolved{
		Time:     pick(cliTime(f), raw.Time, def.Time),
		Compact:  pick(f.Compact, raw.Compact, def.Compact),
		NoBell:   pick(f.NoBell, raw.NoBell, def.NoBell),
		BarWidth: pick(f.BarWidth, raw.BarWidth, def.BarWidth),
	}
}

// ResolveForSave applies CLI > default, ignoring the config file.
func ResolveForSave(f Flags) Resolved {
	return Resolve(f, config.RawConfig{})
}

// Validate parses every resolved value. The first invalid value aborts.
func (r Resolved) Validate() (Settings, error) {
	var t [3]string
	for i, v := range r.Time.Value {
		t[i] = strings.TrimSpace(v)
	}

	focus, err := parse.Duration(t[0])
	if err != nil {
		return Settings{}, err
	}
	rest, err := parse.Duration(t[1])
	if err != nil {
		return Settings{}, err
	}
	repeat, err := parse.Repeat(t[2])
	if err != nil {
		return Settings{}, err
	}
	width, err := parse.BarWidth(strconv.Itoa(r.BarWidth.Value))
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Time:     t,
		Focus:    focus,
		Rest:     rest,
		Repeat:   repeat,
		Compact:  r.Compact.Value,
		NoBell:   r.NoBell.Value,
		BarWidth: width,
	}, nil
}

// Sources returns each field's source keyed by config key, in file order.
func (r Resolved) Sources() []KeySource {
	return []KeySource{
		{Key: config.KeyTime, Source: r.Time.Source},
		{Key: config.KeyCompact, Source: r.Compact.Source},
		{Key: config.KeyNoBell, Source: r.NoBell.Source},
		{Key: config.KeyBarWidth, Source: r.BarWidth.Source},
	}
}

// KeySource pairs a config key with the source of its resolved value.
type KeySource struct {
	Key    string
	Source Source
}
