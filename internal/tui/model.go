package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cozycrafters/cozyreq/internal/models"
	"github.com/cozycrafters/cozyreq/internal/session"
	"github.com/cozycrafters/cozyreq/internal/store"
)

// Screens.
const (
	screenToolCalls = iota
	screenLogs
)

// Model is the root Bubbletea model for the dashboard.
type Model struct {
	db  *store.DB
	run models.AgentRun

	// UI state
	screen   int
	showHelp bool
	width    int
	height   int
	err      error

	// Child components. The session controllers live inside them and are
	// only mutated from this model's Update, so every observed state is
	// internally consistent.
	callList    *CallList
	detailPanel *DetailPanel
	logView     *LogView
}

// NewModel creates the initial model for a loaded run.
func NewModel(db *store.DB, run models.AgentRun, startScreen string) Model {
	screen := screenToolCalls
	if startScreen == "logs" {
		screen = screenLogs
	}
	return Model{
		db:          db,
		run:         run,
		screen:      screen,
		callList:    NewCallList(),
		detailPanel: NewDetailPanel(),
		logView:     NewLogView(),
	}
}

// Init kicks off the one-shot record loads. Each list arrives complete;
// the session controllers are built only from full data.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadToolCallsCmd(m.db, m.run.ID),
		loadLogsCmd(m.db, m.run.ID),
		loadStatsCmd(m.db, m.run.ID),
	)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd

	case ToolCallsLoadedMsg:
		sel := m.callList.SetCalls(msg.Calls)
		// The detail panel follows the selection for the lifetime of the
		// screen; every successful movement replaces its whole content.
		panel := m.detailPanel
		sel.OnChange(func(c session.SelectionChange) {
			panel.SetCall(c.Call)
		})
		if call, ok := sel.SelectedCall(); ok {
			panel.SetCall(call)
		}
		return m, nil

	case RunLoadedMsg:
		m.run = msg.Run
		return m, nil

	case LogsLoadedMsg:
		// Replacing the entry list resets the filter engine; carry the
		// active types and query over so a refresh keeps the view stable.
		prev := m.logView.Filter()
		types, query := prev.ActiveTypes(), prev.Query()
		f := m.logView.SetEntries(msg.Entries)
		f.SetActiveTypes(types)
		f.SetQuery(query)
		return m, nil

	case StatsLoadedMsg:
		m.callList.SetStats(msg.Stats)
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, clearErrorAfter(5 * time.Second)

	case ClearErrorMsg:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// handleKey processes key events.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Search box captures everything except accept/cancel.
	if m.screen == screenLogs && m.logView.Searching() {
		return m.handleSearchKey(msg)
	}

	// Help overlay: any of the usual closers dismisses it.
	if m.showHelp {
		if key.Matches(msg, globalKeys.Help) || msg.Type == tea.KeyEscape ||
			key.Matches(msg, globalKeys.Quit) {
			m.showHelp = false
		}
		return nil
	}

	switch {
	case key.Matches(msg, globalKeys.Quit):
		return tea.Quit

	case key.Matches(msg, globalKeys.Help):
		m.showHelp = true
		return nil

	case key.Matches(msg, globalKeys.Refresh):
		return tea.Batch(
			loadRunCmd(m.db, m.run.ID),
			loadToolCallsCmd(m.db, m.run.ID),
			loadLogsCmd(m.db, m.run.ID),
			loadStatsCmd(m.db, m.run.ID),
		)

	case key.Matches(msg, globalKeys.Screen1):
		m.screen = screenToolCalls
		return nil

	case key.Matches(msg, globalKeys.Screen2):
		m.screen = screenLogs
		return nil
	}

	if m.screen == screenToolCalls {
		return m.handleToolCallsKey(msg)
	}
	return m.handleLogsKey(msg)
}

func (m *Model) handleToolCallsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, callListKeys.Up):
		m.callList.MoveUp()
	case key.Matches(msg, callListKeys.Down):
		m.callList.MoveDown()
	}

	switch msg.String() {
	case "K":
		m.detailPanel.ScrollUp(3)
	case "J":
		m.detailPanel.ScrollDown(3)
	}

	switch msg.Type {
	case tea.KeyPgUp:
		m.detailPanel.ScrollUp(10)
	case tea.KeyPgDown:
		m.detailPanel.ScrollDown(10)
	}
	return nil
}

func (m *Model) handleLogsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, logKeys.Up):
		m.logView.MoveUp()
	case key.Matches(msg, logKeys.Down):
		m.logView.MoveDown()
	case key.Matches(msg, logKeys.ToggleInfo):
		m.logView.Filter().Toggle(models.LogTypeInfo)
	case key.Matches(msg, logKeys.ToggleTool):
		m.logView.Filter().Toggle(models.LogTypeTool)
	case key.Matches(msg, logKeys.ToggleError):
		m.logView.Filter().Toggle(models.LogTypeError)
	case key.Matches(msg, logKeys.ToggleDebug):
		m.logView.Filter().Toggle(models.LogTypeDebug)
	case key.Matches(msg, logKeys.ToggleAll):
		// All on unless already all on, then all off.
		if m.logView.Filter().AllActive() {
			m.logView.Filter().SetActiveTypes(nil)
		} else {
			m.logView.Filter().SetActiveTypes(models.AllLogTypes)
		}
	case key.Matches(msg, logKeys.Search):
		m.logView.StartSearch()
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, searchKeys.Accept):
		m.logView.AcceptSearch()
		return nil
	case key.Matches(msg, searchKeys.Cancel):
		m.logView.CancelSearch()
		return nil
	}

	ti := m.logView.SearchInput()
	newTI, cmd := ti.Update(msg)
	*ti = newTI
	// Filtering happens per keystroke, against the in-memory list only.
	m.logView.SyncQuery()
	return cmd
}

// ── Dimension helpers ────────────────────────────────────────────

func (m *Model) updateDimensions() {
	layout := computeLayout(m.width, m.height)
	m.callList.SetHeight(layout.contentHeight - 2)
	m.detailPanel.SetSize(layout.rightWidth-2, layout.contentHeight-2)
	m.logView.SetSize(m.width-2, layout.contentHeight-2)
}

// layout describes the screen regions: a header line, the content area,
// and a status bar.
type layout struct {
	contentHeight int
	leftWidth     int
	rightWidth    int
}

func computeLayout(width, height int) layout {
	l := layout{contentHeight: height - 2}
	// Tool calls screen: 35% timeline, 65% detail.
	l.leftWidth = width * 35 / 100
	if l.leftWidth < 20 {
		l.leftWidth = 20
	}
	l.rightWidth = width - l.leftWidth
	return l
}

// ── View ─────────────────────────────────────────────────────────

// View renders the dashboard.
func (m Model) View() string {
	if m.width < 60 || m.height < 15 {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render("Terminal too small: need at least 60x15")
	}

	if m.showHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			renderHelp(m.width))
	}

	header := renderHeader(m.run, m.screen, m.width)

	l := computeLayout(m.width, m.height)
	var content string
	if m.screen == screenToolCalls {
		left := focusedBorderStyle.
			Width(l.leftWidth - 2).
			Height(l.contentHeight - 2).
			Render(m.callList.View(l.leftWidth - 4))
		right := unfocusedBorderStyle.
			Width(l.rightWidth - 2).
			Height(l.contentHeight - 2).
			Render(m.detailPanel.View())
		content = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	} else {
		content = focusedBorderStyle.
			Width(m.width - 2).
			Height(l.contentHeight - 2).
			Render(m.logView.View())
	}

	statusBar := renderStatusBar(&m, m.width)
	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}
