// Package output provides context-aware output for pomdot.
// Stdout is used for primary output (the countdown, status, notices).
// Stderr (via log package) is used for diagnostics.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
)

type ctxKey struct{}

// Printer writes primary output to stdout.
type Printer struct {
	w      io.Writer
	styled io.Writer
}

// New creates a new Printer writing to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{
		w:      w,
		styled: colorprofile.NewWriter(w, os.Environ()),
	}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Print writes output without a newline.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Styled returns a writer for lipgloss-styled text. Colors are downsampled
// to what the destination supports and stripped entirely when it is not a
// terminal. Terminal control sequences must go through Writer instead.
func (p *Printer) Styled() io.Writer {
	return p.styled
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// IsTerminal reports whether the underlying writer is a terminal.
func (p *Printer) IsTerminal() bool {
	f, ok := p.w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
