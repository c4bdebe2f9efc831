// Package statusbar renders the bottom line of the TUI: connection state,
// focused pane, and either a message or the key bindings of that pane.
package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/joacominatel/tablepeek/internal/tui/theme"
)

// Key bindings shown per pane when there is no message.
var hints = map[string]string{
	"tables":  "↑/↓: Move │ Enter: Open │ r: Reload │ Tab: Results │ q: Quit",
	"results": "↑/↓: Scroll │ ←/→: Pan │ Esc: Tables │ q: Quit",
}

// Model is the status bar component.
type Model struct {
	width     int
	connected bool
	connName  string
	pane      string
	message   string
	activity  string
}

// New creates a status bar focused on the table picker.
func New() Model {
	return Model{pane: "tables"}
}

// SetWidth updates the component width.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// SetConnected updates the connection indicator.
func (m *Model) SetConnected(connected bool, name string) {
	m.connected = connected
	m.connName = name
}

// SetActivePane selects which pane's bindings are shown.
func (m *Model) SetActivePane(pane string) {
	m.pane = pane
}

// SetMessage replaces the bindings with msg until it is cleared with "".
func (m *Model) SetMessage(msg string) {
	m.message = msg
}

// Message returns the current status message.
func (m Model) Message() string {
	return m.message
}

// SetActivity sets the indicator drawn before the message, typically a
// spinner frame. Empty hides it.
func (m *Model) SetActivity(frame string) {
	m.activity = frame
}

// Hints returns the key bindings of the focused pane.
func (m Model) Hints() string {
	return hints[m.pane]
}

// View renders the status bar.
func (m Model) View() string {
	left := theme.StyleError.Render("●") + " disconnected"
	if m.connected {
		left = theme.StyleOK.Render("●") + " " + m.connName
	}
	left += theme.StyleMuted.Render(" [" + m.pane + "]")

	right := m.Hints()
	if m.message != "" {
		right = m.message
	}
	if m.activity != "" {
		right = m.activity + " " + right
	}

	// frame padding on both sides
	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right)-2)

	return theme.StyleStatusBar.
		Width(m.width).
		Render(left + strings.Repeat(" ", gap) + right)
}
