// Package static provides non-interactive terminal output components.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/pomdot/internal/ui/styles"
)

// SettingRow is one resolved setting in the status table.
type SettingRow struct {
	Key    string
	Value  string
	Source string // "cli", "config" or "default"
}

// Column indexes of the settings table.
const (
	colKey = iota
	colValue
	colSource
)

// RenderSettings renders resolved settings as a borderless KEY/VALUE/SOURCE
// table. Sources are colored with styles.SourceStyle. Returns "" for no rows.
func RenderSettings(rows []SettingRow) string {
	if len(rows) == 0 {
		return ""
	}

	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{r.Key, r.Value, r.Source}
	}

	t := table.New().
		Headers("KEY", "VALUE", "SOURCE").
		Rows(cells...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.Bold.PaddingRight(2)
			case col == colSource && row < len(rows):
				return styles.SourceStyle(rows[row].Source).PaddingRight(2)
			case col == colKey:
				return styles.Bold.PaddingRight(2)
			default:
				return lipgloss.NewStyle().PaddingRight(2)
			}
		})

	var output strings.Builder
	output.WriteString(t.String())
	output.WriteString("\n")
	return output.String()
}
