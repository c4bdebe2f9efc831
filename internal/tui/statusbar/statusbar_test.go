package statusbar_test

import (
	"testing"

	"github.com/joacominatel/tablepeek/internal/tui/statusbar"
	"github.com/stretchr/testify/assert"
)

func TestView(t *testing.T) {
	m := statusbar.New()
	m.SetWidth(100)
	assert.Contains(t, m.View(), "disconnected")
	assert.Contains(t, m.View(), "Enter: Open")

	m.SetConnected(true, "postgres://db/shop")
	m.SetActivePane("results")
	assert.Contains(t, m.View(), "postgres://db/shop")
	assert.Contains(t, m.View(), "[results]")
	assert.Contains(t, m.View(), m.Hints())

	m.SetMessage("Fetching people...")
	m.SetActivity("*")
	assert.Equal(t, "Fetching people...", m.Message())
	assert.Contains(t, m.View(), "* Fetching people...")
	assert.NotContains(t, m.View(), m.Hints())
}
