// Package log provides context-aware diagnostic logging for pomdot.
//
// Diagnostics go to stderr so stdout stays reserved for the timer and for
// status output. Debug records are only written in verbose mode and are
// formatted by charmbracelet/log as "DEBU message key=value ...".
package log

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
)

type ctxKey struct{}

// Logger writes diagnostics and verbose debug records.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
	debug   *charmlog.Logger
}

// New creates a new logger. quiet suppresses all output, including
// verbose records.
func New(out io.Writer, verbose, quiet bool) *Logger {
	l := &Logger{out: out, verbose: verbose, quiet: quiet}
	if l.IsVerbose() {
		l.debug = charmlog.NewWithOptions(out, charmlog.Options{
			Level:  charmlog.DebugLevel,
			Prefix: "pomdot",
		})
	}
	return l
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a logger writing to io.Discard if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted output unless quiet.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Debug writes a key/value record in verbose mode.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if l.debug == nil {
		return
	}
	l.debug.Debug(msg, keyvals...)
}

// IsVerbose returns true if verbose records are written.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}
