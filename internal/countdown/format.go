package countdown

import (
	"fmt"
	"strings"
)

// FormatHHMMSS formats seconds as HH:MM:SS. Hours are not wrapped at 24.
func FormatHHMMSS(seconds int) string {
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// BuildBar renders a bar of width cells, filled in proportion to
// remaining/total. A zero total renders an empty bar.
func BuildBar(remaining, total, width int) string {
	ratio := 0.0
	if total > 0 {
		ratio = float64(remaining) / float64(total)
	}
	filled := min(max(int(ratio*float64(width)), 0), width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
