package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette (Dracula-inspired)
var (
	colorPurple = lipgloss.Color("#BD93F9")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorRed    = lipgloss.Color("#FF5555")
	colorGray   = lipgloss.Color("#6272A4")
	colorYellow = lipgloss.Color("#F1FA8C")
)

// Shared Styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	writtenStyle = lipgloss.NewStyle().Foreground(colorGreen)
	skippedStyle = lipgloss.NewStyle().Foreground(colorGray)
	failedStyle  = lipgloss.NewStyle().Foreground(colorRed).Bold(true)

	subtleStyle = lipgloss.NewStyle().Foreground(colorGray)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)
)
