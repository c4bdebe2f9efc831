package explorer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joacominatel/tablepeek/internal/app"
	"github.com/joacominatel/tablepeek/internal/tui/theme"
)

// SelectTableMsg asks the app to fetch and show a table.
type SelectTableMsg struct {
	Table app.TableName
}

// Model is the table picker component.
type Model struct {
	tables  []app.TableName
	cursor  int
	width   int
	height  int
	focused bool
	loading bool
	loaded  bool
}

// New creates a new explorer model.
func New() Model {
	return Model{}
}

// SetSize updates the component dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetFocused sets the focus state.
func (m *Model) SetFocused(f bool) {
	m.focused = f
}

// SetLoading sets the loading state.
func (m *Model) SetLoading(l bool) {
	m.loading = l
}

// SetTables replaces the listing, keeping the cursor on the same name when
// it is still present.
func (m *Model) SetTables(tables []app.TableName) {
	var current app.TableName
	if m.cursor >= 0 && m.cursor < len(m.tables) {
		current = m.tables[m.cursor]
	}

	m.tables = tables
	m.loading = false
	m.loaded = true
	m.cursor = 0
	for i, t := range tables {
		if t == current {
			m.cursor = i
			break
		}
	}
}

// Tables returns the current listing.
func (m Model) Tables() []app.TableName {
	return m.tables
}

// Selected returns the table under the cursor.
func (m Model) Selected() (app.TableName, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tables) {
		return "", false
	}
	return m.tables[m.cursor], true
}

// Update handles messages for the explorer.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.tables)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = max(0, len(m.tables)-1)
		case "enter", "right", "l":
			if t, ok := m.Selected(); ok {
				return m, func() tea.Msg { return SelectTableMsg{Table: t} }
			}
		}
	}

	return m, nil
}

// View renders the explorer.
func (m Model) View() string {
	title := theme.StyleTitle.Render(fmt.Sprintf("Tables (%d)", len(m.tables)))

	var status string
	switch {
	case m.loading:
		status = "Loading..."
	case !m.loaded:
		status = "No connection"
	case len(m.tables) == 0:
		status = "No tables in the database"
	}
	if status != "" {
		return title + "\n" + theme.StyleMuted.Render("  "+status)
	}

	from, to := window(m.cursor, len(m.tables), m.height-2)
	items := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		items = append(items, m.renderItem(i))
	}
	return title + "\n" + strings.Join(items, "\n")
}

// window returns the slice of n items to show in height lines so that
// cursor stays visible.
func window(cursor, n, height int) (from, to int) {
	height = max(1, height)
	if cursor >= height {
		from = cursor - height + 1
	}
	return from, min(n, from+height)
}

func (m Model) renderItem(i int) string {
	item := fmt.Sprintf("%3d. %s", i+1, m.tables[i])

	// leave room for the cursor marker
	if limit := m.width - 2; m.width > 4 && lipgloss.Width(item) > limit {
		item = string([]rune(item)[:max(0, limit-2)]) + ".."
	}

	if i == m.cursor {
		return theme.StyleCursor.Render("> " + item)
	}
	return "  " + item
}
