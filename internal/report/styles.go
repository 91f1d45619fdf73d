// Package report renders an analysis result for terminal display.
package report

import "github.com/charmbracelet/lipgloss"

// Theme colors.
var (
	primaryColor = lipgloss.Color("#8B5CF6") // violet
	successColor = lipgloss.Color("#10B981") // green
	warningColor = lipgloss.Color("#F59E0B") // amber
	errorColor   = lipgloss.Color("#EF4444") // red
	subtleColor  = lipgloss.Color("#666666") // gray
)

// Styles contains all styling definitions for report formatting.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style
	Positive lipgloss.Style
	Warning  lipgloss.Style
	Negative lipgloss.Style
	Value    lipgloss.Style
	Subtle   lipgloss.Style
	Box      lipgloss.Style
}

// NewStyles creates a new Styles instance with default styling.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(subtleColor).
			MarginBottom(1),
		Header: lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#333")),
		Positive: lipgloss.NewStyle().
			Foreground(successColor),
		Warning: lipgloss.NewStyle().
			Foreground(warningColor),
		Negative: lipgloss.NewStyle().
			Foreground(errorColor),
		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor),
		Subtle: lipgloss.NewStyle().
			Foreground(subtleColor),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtleColor).
			Padding(0, 1),
	}
}
