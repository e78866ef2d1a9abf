package config

import (
	"fmt"

	"github.com/raphi011/pomdot/internal/parse"
)

const configTemplate = `# Pomdot config file
# Default location: ~/.config/pomdot/%[1]s
# Command-line flags override these values.

# time = [FOCUS, REST, REPEAT]
# FOCUS and REST formats:
# - N  -> minutes
# - Nm -> minutes
# - Ns -> seconds
# - minimum value: 1
# - maximum value: none
# REPEAT format:
# - non-negative integer
# - minimum value: 0
# - maximum value: none
time = [%[2]q, %[3]q, %[4]q]

# Compact output mode
# - expected values: true or false
compact = %[5]t

# Disable completion bell
# - expected values: true or false
no_bell = %[6]t

# Countdown bar width
# - expected value: integer
# - minimum value: %[7]d
# - maximum value: none
bar_width = %[8]d
`

// Render returns the commented config file content for v.
func Render(v Values) string {
	return fmt.Sprintf(configTemplate,
		FileName,
		v.Time[0], v.Time[1], v.Time[2],
		v.Compact,
		v.NoBell,
		parse.MinBarWidth,
		v.BarWidth,
	)
}
