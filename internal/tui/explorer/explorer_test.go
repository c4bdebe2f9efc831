package explorer_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joacominatel/tablepeek/internal/app"
	"github.com/joacominatel/tablepeek/internal/tui/explorer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(m explorer.Model, k tea.KeyType) (explorer.Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: k})
}

func TestExplorer(t *testing.T) {
	m := explorer.New()
	m.SetSize(30, 10)
	m.SetFocused(true)
	assert.Contains(t, m.View(), "No connection")

	m.SetTables([]app.TableName{"audit", "orders", "people"})
	assert.Contains(t, m.View(), "Tables (3)")
	assert.Contains(t, m.View(), "3. people")

	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyDown)
	sel, ok := m.Selected()
	require.True(t, ok)
	require.Equal(t, app.TableName("people"), sel)

	m, _ = press(m, tea.KeyUp)
	m, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	require.Equal(t, explorer.SelectTableMsg{Table: "orders"}, cmd())

	t.Run("reload keeps the cursor on the same table", func(t *testing.T) {
		m := m
		m.SetTables([]app.TableName{"accounts", "audit", "orders", "people"})
		sel, _ := m.Selected()
		require.Equal(t, app.TableName("orders"), sel)

		m.SetTables([]app.TableName{"people"})
		sel, _ = m.Selected()
		require.Equal(t, app.TableName("people"), sel)
	})

	t.Run("ignores keys without focus", func(t *testing.T) {
		m := m
		m.SetFocused(false)
		_, cmd := press(m, tea.KeyEnter)
		require.Nil(t, cmd)
	})

	t.Run("empty listing", func(t *testing.T) {
		m := explorer.New()
		m.SetFocused(true)
		m.SetTables(nil)
		assert.Contains(t, m.View(), "No tables in the database")

		_, cmd := press(m, tea.KeyEnter)
		require.Nil(t, cmd)
	})
}
