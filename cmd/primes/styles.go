package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Accent is the heading color.
var Accent = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}

// headingStyle returns a styler for headers and titles on w. On anything that
// is not a color terminal the renderer falls back to plain text, so piped
// output is unchanged.
func headingStyle(w io.Writer) func(string) string {
	style := lipgloss.NewRenderer(w).NewStyle().Bold(true).Foreground(Accent)
	return func(s string) string {
		return style.Render(s)
	}
}
