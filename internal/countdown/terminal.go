package countdown

import (
	"fmt"
	"io"
)

// Terminal control sequences.
const (
	HideCursorSeq = "\x1b[?25l"
	ShowCursorSeq = "\x1b[?25h"
	ClearLine     = "\r\x1b[2K"
	Bell          = "\a"
)

// HideCursor hides the terminal cursor and returns a function restoring it.
// Callers defer the restore so every exit path shows the cursor again.
func HideCursor(w io.Writer) (restore func()) {
	fmt.Fprint(w, HideCursorSeq)
	return func() {
		fmt.Fprint(w, ShowCursorSeq)
	}
}
