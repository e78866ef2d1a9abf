// Package styles provides shared lipgloss styles for pomdot output.
//
// Styled text must be written through output.Printer.Styled so colors are
// downsampled (or stripped) for the destination.
package styles

import "charm.land/lipgloss/v2"

// Colors used throughout the UI
var (
	// Primary is the main accent color (cyan/teal)
	Primary = lipgloss.Color("62")

	// Accent is the highlight color for explicit user input (pink)
	Accent = lipgloss.Color("212")

	// Success is used for completion notices (green)
	Success = lipgloss.Color("82")

	// Error is used for error messages (red)
	Error = lipgloss.Color("196")

	// Muted is used for default values (gray)
	Muted = lipgloss.Color("240")

	// Warning is used for the cancellation notice (orange)
	Warning = lipgloss.Color("214")
)

// Common styles
var (
	Bold = lipgloss.NewStyle().Bold(true)

	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
)

// SourceStyle returns the style for a setting source name
// ("cli", "config" or "default").
func SourceStyle(source string) lipgloss.Style {
	switch source {
	case "cli":
		return AccentStyle
	case "config":
		return PrimaryStyle
	default:
		return MutedStyle
	}
}
