package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config file errors.
var (
	ErrMalformedConfig  = errors.New("malformed config")
	ErrUnknownKey       = errors.New("unknown config key")
	ErrInvalidShape     = errors.New("invalid config value")
	ErrInvalidTimeShape = errors.New("invalid time value")
	ErrInvalidBoolType  = errors.New("invalid boolean value")
	ErrAlreadyExists    = errors.New("config file already exists")
)

// UnknownKeyError reports top-level keys that pomdot does not recognize.
type UnknownKeyError struct {
	Path        string
	Keys        []string          // sorted
	Suggestions map[string]string // unknown key -> closest known key
}

func (e *UnknownKeyError) Error() string {
	parts := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		if s, ok := e.Suggestions[k]; ok {
			parts[i] = fmt.Sprintf("%s (did you mean %q?)", k, s)
			continue
		}
		parts[i] = k
	}
	return fmt.Sprintf("unknown config key(s) in %s: %s; valid keys are %s",
		e.Path, strings.Join(parts, ", "), formatOptions(Keys))
}

func (e *UnknownKeyError) Unwrap() error {
	return ErrUnknownKey
}
