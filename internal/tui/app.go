package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joacominatel/tablepeek/internal/app"
	"github.com/joacominatel/tablepeek/internal/database"
	"github.com/joacominatel/tablepeek/internal/session"
	"github.com/joacominatel/tablepeek/internal/tui/explorer"
	"github.com/joacominatel/tablepeek/internal/tui/results"
	"github.com/joacominatel/tablepeek/internal/tui/statusbar"
	"github.com/joacominatel/tablepeek/internal/tui/theme"
)

// Pane identifies a focusable area.
type Pane int

const (
	PaneExplorer Pane = iota
	PaneResults
)

func (p Pane) String() string {
	switch p {
	case PaneExplorer:
		return "tables"
	case PaneResults:
		return "results"
	default:
		return "unknown"
	}
}

// Timeouts for the async commands.
const (
	listTimeout  = 15 * time.Second
	fetchTimeout = 30 * time.Second
)

// Custom messages for async operations.
type (
	tablesLoadedMsg struct {
		tables []app.TableName
		err    error
	}
	tableFetchedMsg struct {
		table  app.TableName
		result *database.ResultSet
		err    error
	}
)

// Model is the top-level bubbletea model orchestrating all components.
type Model struct {
	browser    session.Browser
	connName   string
	explorer   explorer.Model
	results    results.Model
	statusbar  statusbar.Model
	spinner    spinner.Model
	activePane Pane
	width      int
	height     int
	busy       bool
	err        error
}

// NewModel creates the top-level model for an already connected browser.
func NewModel(browser session.Browser, connName string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.ColorAccent)

	m := Model{
		browser:   browser,
		connName:  connName,
		explorer:  explorer.New(),
		results:   results.New(),
		statusbar: statusbar.New(),
		spinner:   sp,
	}
	m.statusbar.SetConnected(true, connName)
	m.setFocus(PaneExplorer)
	// Init has a value receiver and cannot record the listing in flight.
	m.setListing()
	return m
}

// Err returns the fatal error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Init loads the table listing.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listTablesCmd())
}

func (m *Model) startListing() tea.Cmd {
	m.setListing()
	return m.listTablesCmd()
}

func (m *Model) setListing() {
	m.busy = true
	m.explorer.SetLoading(true)
	m.statusbar.SetMessage("Loading tables...")
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab", "shift+tab":
			m.cyclePane()
			return m, nil
		case "esc":
			m.setFocus(PaneExplorer)
			return m, nil
		case "r":
			if !m.busy {
				return m, m.startListing()
			}
			return m, nil
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tablesLoadedMsg:
		m.busy = false
		if msg.err != nil {
			// listing failures end the session
			m.err = msg.err
			m.statusbar.SetConnected(false, m.connName)
			return m, tea.Quit
		}
		m.explorer.SetTables(msg.tables)
		if len(msg.tables) == 0 {
			m.statusbar.SetMessage(session.MsgNoTables)
		} else {
			m.statusbar.SetMessage("")
		}
		return m, nil

	case explorer.SelectTableMsg:
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.results.SetLoading(msg.Table)
		m.statusbar.SetMessage("Fetching " + string(msg.Table) + "...")
		return m, m.fetchTableCmd(msg.Table)

	case tableFetchedMsg:
		m.busy = false
		m.statusbar.SetMessage("")
		if msg.err != nil {
			m.results.SetError(msg.table, msg.err)
			return m, nil
		}
		m.results.SetResult(msg.table, msg.result)
		m.setFocus(PaneResults)
		return m, nil
	}

	return m.updateComponents(msg)
}

func (m Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.activePane {
	case PaneExplorer:
		m.explorer, cmd = m.explorer.Update(msg)
	case PaneResults:
		m.results, cmd = m.results.Update(msg)
	}

	return m, cmd
}

func (m *Model) cyclePane() {
	if m.activePane == PaneExplorer {
		m.setFocus(PaneResults)
		return
	}
	m.setFocus(PaneExplorer)
}

func (m *Model) setFocus(pane Pane) {
	m.activePane = pane
	m.explorer.SetFocused(pane == PaneExplorer)
	m.results.SetFocused(pane == PaneResults)
	m.statusbar.SetActivePane(pane.String())
}

func (m Model) explorerWidth() int {
	return min(max(m.width/4, 22), 35)
}

func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	// status bar plus the borders around each pane
	availHeight := m.height - 1 - 2
	rightWidth := m.width - m.explorerWidth() - 1

	m.explorer.SetSize(m.explorerWidth()-2, availHeight)
	m.results.SetSize(rightWidth-2, availHeight)
	m.statusbar.SetWidth(m.width)
}

// Async commands. The browser owns a single connection, so at most one of
// these is in flight at a time (guarded by busy).

func (m Model) listTablesCmd() tea.Cmd {
	browser := m.browser
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
		defer cancel()
		tables, err := browser.ListTables(ctx)
		return tablesLoadedMsg{tables: tables, err: err}
	}
}

func (m Model) fetchTableCmd(table app.TableName) tea.Cmd {
	browser := m.browser
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		result, err := browser.FetchTable(ctx, table)
		return tableFetchedMsg{table: table, result: result, err: err}
	}
}

// View renders the entire application.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	height := m.height - 1 - 2
	left := theme.Pane(m.activePane == PaneExplorer).
		Width(m.explorerWidth() - 2).
		Height(height).
		Render(m.explorer.View())
	right := theme.Pane(m.activePane == PaneResults).
		Width(m.width - m.explorerWidth() - 1 - 2).
		Height(height).
		Render(m.results.View())

	status := m.statusbar
	if m.busy {
		status.SetActivity(m.spinner.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		status.View(),
	)
}
