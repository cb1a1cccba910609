// Package style holds the terminal styles for cratekit output. Colors are
// adaptive so they read on light and dark themes; lipgloss drops them when
// the output is not a terminal.
package style

import "github.com/charmbracelet/lipgloss"

var (
	Success = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#3fb950"})
	Error   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f85149"})
	Heading = lipgloss.NewStyle().Bold(true)
	Muted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6e7781", Dark: "#8b949e"})
)

// Created formats a progress line for a written file.
func Created(path string) string {
	return Success.Render("Created") + " " + path
}

// Appended formats a progress line for a file that was appended to.
func Appended(path string) string {
	return Success.Render("Appended") + " " + path
}

// Step formats the line printed before a strategy runs.
func Step(name string) string {
	return Muted.Render("Running strategy:") + " " + Heading.Render(name)
}
