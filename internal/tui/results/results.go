package results

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/joacominatel/tablepeek/internal/app"
	"github.com/joacominatel/tablepeek/internal/database"
	"github.com/joacominatel/tablepeek/internal/grid"
	"github.com/joacominatel/tablepeek/internal/session"
	"github.com/joacominatel/tablepeek/internal/tui/theme"
)

// panStep is how many cells left/right shifts the grid.
const panStep = 8

// Model is the grid viewer component.
type Model struct {
	table    app.TableName
	result   *database.ResultSet
	lines    []string
	err      error
	viewport viewport.Model
	offsetX  int
	width    int
	height   int
	focused  bool
	loading  bool
}

// New creates a new results model.
func New() Model {
	return Model{viewport: viewport.New(0, 0)}
}

// SetSize updates the component dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = max(1, w)
	m.viewport.Height = max(1, h-2) // title + stats
	m.refresh()
}

// SetFocused sets the focus state.
func (m *Model) SetFocused(f bool) {
	m.focused = f
}

// SetLoading sets the loading state.
func (m *Model) SetLoading(table app.TableName) {
	m.table = table
	m.loading = true
}

// SetResult sets the fetched table to display.
func (m *Model) SetResult(table app.TableName, r *database.ResultSet) {
	m.table = table
	m.result = r
	m.err = nil
	m.loading = false
	m.offsetX = 0
	m.lines = grid.RenderResult(r)
	m.viewport.GotoTop()
	m.refresh()
}

// SetError sets an error to display.
func (m *Model) SetError(table app.TableName, err error) {
	m.table = table
	m.err = err
	m.result = nil
	m.lines = nil
	m.loading = false
	m.refresh()
}

// Lines returns the rendered grid of the current result.
func (m Model) Lines() []string {
	return m.lines
}

func (m *Model) refresh() {
	if len(m.lines) == 0 {
		m.viewport.SetContent("")
		return
	}
	shifted := make([]string, len(m.lines))
	for i, l := range m.lines {
		shifted[i] = ansi.Cut(l, m.offsetX, ansi.StringWidth(l))
	}
	shifted[0] = theme.StyleGridHeader.Render(shifted[0])
	m.viewport.SetContent(strings.Join(shifted, "\n"))
}

// Update handles messages for the results pane.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "left", "h":
			if m.offsetX > 0 {
				m.offsetX = max(0, m.offsetX-panStep)
				m.refresh()
			}
			return m, nil
		case "right", "l":
			if len(m.lines) > 0 && m.offsetX+panStep < ansi.StringWidth(m.lines[0]) {
				m.offsetX += panStep
				m.refresh()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the results pane.
func (m Model) View() string {
	title := "Results"
	if m.table != "" {
		title = string(m.table)
	}
	head := theme.StyleTitle.Render(title)

	switch {
	case m.loading:
		return head + "\n" + theme.StyleMuted.Render("  Fetching rows...")
	case m.err != nil:
		msg := strings.ReplaceAll(session.Describe(m.err), "\n", "\n  ")
		return head + "\n" + theme.StyleError.Render("  "+msg)
	case m.result == nil:
		return head + "\n" + theme.StyleMuted.Render("  Select a table to see its rows")
	}

	if len(m.result.Columns) > 0 {
		head += "  " + theme.StyleMuted.Render(session.Summary(m.result))
	}
	return head + "\n" + m.viewport.View()
}
