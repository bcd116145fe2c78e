package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette using ANSI color codes for terminal compatibility.
// The graph bars themselves are always plain text; colors apply only to
// diagnostics and the optional header row.

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
)

// Text colors for content hierarchy
const (
	ColorPrimary lipgloss.Color = "7" // White/default
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)

var colorsEnabled = detectColors()

// detectColors decides the initial color state: honor NO_COLOR and
// CLICOLOR conventions, and disable styling when stdout is not a TTY.
func detectColors() bool {
	if termenv.EnvNoColor() {
		return false
	}
	return IsTerminal(os.Stdout)
}

// DisableColors switches all styled output to monochrome (--no-color flag).
func DisableColors() {
	colorsEnabled = false
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ColorsEnabled reports whether styled output is active.
func ColorsEnabled() bool {
	return colorsEnabled
}

// HeaderStyle returns the style for the optional column header row.
func HeaderStyle() lipgloss.Style {
	if !colorsEnabled {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
}

// ErrorStyle returns the style for fatal error output.
func ErrorStyle() lipgloss.Style {
	if !colorsEnabled {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(ColorError)
}
