package main

import (
	"errors"
)

// Exit codes
const (
	exitOK        = 0
	exitFailure   = 1
	exitUsage     = 2
	exitCancelled = 130
)

// errCancelled is returned when the user interrupts a running timer.
var errCancelled = errors.New("cancelled")

// usageError marks errors caused by invalid flags, values or config files.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// usage wraps err as a usage error. Returns nil for nil.
func usage(err error) error {
	if err == nil {
		return nil
	}
	return usageError{err: err}
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	var ue usageError
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errCancelled):
		return exitCancelled
	case errors.As(err, &ue):
		return exitUsage
	default:
		return exitFailure
	}
}
