package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent  = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6C7086")
	colorSuccess = lipgloss.Color("#A6E3A1")
	colorWarning = lipgloss.Color("#F9E2AF")
	colorError   = lipgloss.Color("#F38BA8")

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorError)
)

func heading(s string) string { return headingStyle.Render(s) }
func muted(s string) string   { return mutedStyle.Render(s) }
