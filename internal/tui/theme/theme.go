// Package theme holds the colors and styles shared by the TUI components.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette. Adaptive colors keep the grid readable on light terminals.
var (
	ColorAccent  = lipgloss.AdaptiveColor{Light: "55", Dark: "63"}
	ColorOK      = lipgloss.AdaptiveColor{Light: "28", Dark: "42"}
	ColorFailure = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	ColorFrame   = lipgloss.AdaptiveColor{Light: "250", Dark: "238"}
	ColorDim     = lipgloss.AdaptiveColor{Light: "242", Dark: "245"}
	ColorCursor  = lipgloss.AdaptiveColor{Light: "130", Dark: "229"}
)

var (
	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	StyleCursor = lipgloss.NewStyle().
			Foreground(ColorCursor).
			Bold(true)

	// StyleGridHeader is applied to the header line of a rendered grid.
	StyleGridHeader = lipgloss.NewStyle().Bold(true)

	StyleMuted = lipgloss.NewStyle().Foreground(ColorDim)
	StyleError = lipgloss.NewStyle().Foreground(ColorFailure)
	StyleOK    = lipgloss.NewStyle().Foreground(ColorOK)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "254", Dark: "236"}).
			Foreground(lipgloss.AdaptiveColor{Light: "235", Dark: "252"}).
			Padding(0, 1)
)

// Pane returns the border style of a pane, highlighted when it has focus.
func Pane(focused bool) lipgloss.Style {
	color := ColorFrame
	if focused {
		color = ColorAccent
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}
