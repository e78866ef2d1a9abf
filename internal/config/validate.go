package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Keys lists the recognized config keys in file order.
var Keys = []string{KeyTime, KeyCompact, KeyNoBell, KeyBarWidth}

// Config keys.
const (
	KeyTime     = "time"
	KeyCompact  = "compact"
	KeyNoBell   = "no_bell"
	KeyBarWidth = "bar_width"
)

// unknownKeys returns the sorted keys of data that are not in Keys.
func unknownKeys(data map[string]any) []string {
	var unknown []string
	for k := range data {
		if !slices.Contains(Keys, k) {
			unknown = append(unknown, k)
		}
	}
	slices.Sort(unknown)
	return unknown
}

// suggestKeys maps each unknown key to the best fuzzy match among Keys.
// Dashes are treated as underscores so flag spellings like "bar-width" match.
func suggestKeys(unknown []string) map[string]string {
	suggestions := make(map[string]string)
	for _, k := range unknown {
		pattern := strings.ReplaceAll(strings.ToLower(k), "-", "_")
		matches := fuzzy.Find(pattern, Keys)
		if len(matches) > 0 {
			suggestions[k] = matches[0].Str
		}
	}
	return suggestions
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
