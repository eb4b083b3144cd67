package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// colorEnabled reports whether the attached terminal supports ANSI
// colour; plain output (e.g. when piped into a test harness) skips the
// lipgloss styling rather than emitting raw escape codes.
func colorEnabled() bool {
	return termenv.ColorProfile() != termenv.Ascii
}

var (
	titleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4")).
		Padding(0, 1).
		Bold(true)

	handInfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#96CEB4")).
		Bold(true)

	actionsStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700"))

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF6B6B")).
		Bold(true)

	successStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#96CEB4")).
		Bold(true)

	infoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#626262"))
)

// render applies style unless the terminal lacks colour support, in which
// case the plain string passes through untouched.
func render(style lipgloss.Style, s string) string {
	if !colorEnabled() {
		return s
	}
	return style.Render(s)
}
