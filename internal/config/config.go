package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/pomdot/internal/parse"
)

// FileName is the config file name inside the pomdot config directory.
const FileName = "config.toml"

// EnvPath overrides the default config location when set.
const EnvPath = "POMDOT_CONFIG"

// Built-in defaults
const (
	DefaultFocus    = "30"
	DefaultRest     = "5"
	DefaultRepeat   = "0"
	DefaultCompact  = false
	DefaultNoBell   = false
	DefaultBarWidth = 30
)

// Values is a complete set of settings as written to the config file.
type Values struct {
	Time     [3]string // focus, rest, repeat as typed by the user
	Compact  bool
	NoBell   bool
	BarWidth int
}

// Defaults returns the built-in default values.
func Defaults() Values {
	return Values{
		Time:     [3]string{DefaultFocus, DefaultRest, DefaultRepeat},
		Compact:  DefaultCompact,
		NoBell:   DefaultNoBell,
		BarWidth: DefaultBarWidth,
	}
}

// RawConfig holds the keys present in a config file.
// A nil field means the key was absent; present keys are already validated.
type RawConfig struct {
	Time     *[3]string
	Compact  *bool
	NoBell   *bool
	BarWidth *int
}

// IsEmpty reports whether no keys were set.
func (r RawConfig) IsEmpty() bool {
	return r.Time == nil && r.Compact == nil && r.NoBell == nil && r.BarWidth == nil
}

// DefaultPath returns the config file location.
// POMDOT_CONFIG takes precedence over ~/.config/pomdot/config.toml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return ExpandPath(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return filepath.Join(home, ".config", "pomdot", FileName), nil
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Load reads the config file at path.
// Returns an empty RawConfig (no error) if the file doesn't exist.
// Returns an error if the file exists but is invalid.
func Load(path string) (RawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var table map[string]any
	if _, err := toml.Decode(string(data), &table); err != nil {
		return RawConfig{}, fmt.Errorf("%w: invalid TOML in config file %s: %v", ErrMalformedConfig, path, err)
	}

	if unknown := unknownKeys(table); len(unknown) > 0 {
		return RawConfig{}, &UnknownKeyError{
			Path:        path,
			Keys:        unknown,
			Suggestions: suggestKeys(unknown),
		}
	}

	return decodeTable(path, table)
}

// decodeTable validates each known key of a parsed config table.
func decodeTable(path string, table map[string]any) (RawConfig, error) {
	var raw RawConfig

	if v, ok := table[KeyTime]; ok {
		t, err := decodeTime(v)
		if err != nil {
			return RawConfig{}, fmt.Errorf("invalid 'time' in %s: %w", path, err)
		}
		raw.Time = &t
	}

	if v, ok := table[KeyCompact]; ok {
		b, ok := v.(bool)
		if !ok {
			return RawConfig{}, fmt.Errorf("invalid 'compact' in %s: %w: expected true or false", path, ErrInvalidBoolType)
		}
		raw.Compact = &b
	}

	if v, ok := table[KeyNoBell]; ok {
		b, ok := v.(bool)
		if !ok {
			return RawConfig{}, fmt.Errorf("invalid 'no_bell' in %s: %w: expected true or false", path, ErrInvalidBoolType)
		}
		raw.NoBell = &b
	}

	if v, ok := table[KeyBarWidth]; ok {
		n, ok := v.(int64)
		if !ok {
			return RawConfig{}, fmt.Errorf("invalid 'bar_width' in %s: %w: expected an integer", path, ErrInvalidShape)
		}
		width, err := parse.BarWidth(strconv.FormatInt(n, 10))
		if err != nil {
			return RawConfig{}, fmt.Errorf("invalid 'bar_width' in %s: %w", path, err)
		}
		raw.BarWidth = &width
	}

	return raw, nil
}

// decodeTime converts a TOML time array into its three string components.
// Values are only shape-checked here; the resolver validates their content.
func decodeTime(v any) ([3]string, error) {
	var t [3]string

	items, ok := v.([]any)
	if !ok || len(items) != len(t) {
		return t, fmt.Errorf("%w: expected an array with 3 values (focus, rest, repeat)", ErrInvalidTimeShape)
	}

	for i, item := range items {
		switch x := item.(type) {
		case string:
			t[i] = x
		case int64:
			t[i] = strconv.FormatInt(x, 10)
		default:
			return t, fmt.Errorf("%w: each value must be a string or integer", ErrInvalidTimeShape)
		}
	}

	return t, nil
}

// WriteDefault writes the commented config template with built-in defaults.
// Fails with ErrAlreadyExists if the file exists and force is false.
func WriteDefault(path string, force bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrAlreadyExists, path)
		}
	}

	return writeFile(path, Render(Defaults()))
}

// Save overwrites the config file at path with v.
func Save(path string, v Values) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return writeFile(path, Render(v))
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
