package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/cozycrafters/cozyreq/internal/models"
	"github.com/cozycrafters/cozyreq/internal/session"
)

// LogView is the logs screen: a filter bar, a search box, and a scrolling
// table of the visible entries. All filtering decisions live in the
// session filter engine; the view tracks only cursor and scroll state.
type LogView struct {
	filter       *session.Filter
	visible      []models.LogEntry
	search       textinput.Model
	searching    bool
	cursor       int
	scrollOffset int
	width        int
	height       int
}

// NewLogView creates a log view over an empty entry list.
func NewLogView() *LogView {
	ti := textinput.New()
	ti.Placeholder = "search messages"
	ti.Prompt = "/ "
	ti.CharLimit = 120

	lv := &LogView{search: ti}
	lv.SetEntries(nil)
	return lv
}

// SetEntries replaces the full log list, resetting filter and cursor state.
func (lv *LogView) SetEntries(entries []models.LogEntry) *session.Filter {
	lv.filter = session.NewFilter(entries)
	lv.filter.OnChange(func(visible []models.LogEntry) {
		lv.visible = visible
		lv.clampCursor()
	})
	lv.visible = lv.filter.Visible()
	lv.cursor = 0
	lv.scrollOffset = 0
	return lv.filter
}

// Filter exposes the underlying filter engine.
func (lv *LogView) Filter() *session.Filter {
	return lv.filter
}

// SetSize updates dimensions.
func (lv *LogView) SetSize(width, height int) {
	lv.width = width
	lv.height = height
}

// Searching reports whether the search box has focus.
func (lv *LogView) Searching() bool {
	return lv.searching
}

// StartSearch focuses the search box.
func (lv *LogView) StartSearch() {
	lv.searching = true
	lv.search.Focus()
}

// AcceptSearch leaves search mode, keeping the current query.
func (lv *LogView) AcceptSearch() {
	lv.searching = false
	lv.search.Blur()
}

// CancelSearch leaves search mode and clears the query.
func (lv *LogView) CancelSearch() {
	lv.searching = false
	lv.search.Blur()
	lv.search.SetValue("")
	lv.filter.SetQuery("")
}

// SearchInput returns the search text input for message forwarding.
func (lv *LogView) SearchInput() *textinput.Model {
	return &lv.search
}

// SyncQuery pushes the search box contents into the filter engine. Called
// after every keystroke while searching, so the table updates live.
func (lv *LogView) SyncQuery() {
	if lv.search.Value() != lv.filter.Query() {
		lv.filter.SetQuery(lv.search.Value())
	}
}

// MoveUp moves the cursor up one visible row.
func (lv *LogView) MoveUp() {
	if lv.cursor > 0 {
		lv.cursor--
		lv.ensureVisible()
	}
}

// MoveDown moves the cursor down one visible row.
func (lv *LogView) MoveDown() {
	if lv.cursor < len(lv.visible)-1 {
		lv.cursor++
		lv.ensureVisible()
	}
}

func (lv *LogView) clampCursor() {
	if lv.cursor >= len(lv.visible) {
		lv.cursor = len(lv.visible) - 1
	}
	if lv.cursor < 0 {
		lv.cursor = 0
	}
	lv.ensureVisible()
}

// tableHeight is the rows available under the filter bar and column header.
func (lv *LogView) tableHeight() int {
	h := lv.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

func (lv *LogView) ensureVisible() {
	if lv.cursor < lv.scrollOffset {
		lv.scrollOffset = lv.cursor
	}
	if lv.cursor >= lv.scrollOffset+lv.tableHeight() {
		lv.scrollOffset = lv.cursor - lv.tableHeight() + 1
	}
}

// View renders the filter bar, search box, and log table.
func (lv *LogView) View() string {
	var lines []string
	lines = append(lines, lv.renderFilterBar())
	lines = append(lines, lv.renderColumnHeader())

	if len(lv.visible) == 0 {
		empty := "No log entries match the current filters."
		if lv.filter != nil && len(lv.filter.ActiveTypes()) == 0 {
			empty = "All log types are hidden. Press 'a' to show them."
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(colorDim).Render("  "+empty))
		return strings.Join(lines, "\n")
	}

	end := lv.scrollOffset + lv.tableHeight()
	if end > len(lv.visible) {
		end = len(lv.visible)
	}
	for i := lv.scrollOffset; i < end; i++ {
		lines = append(lines, lv.renderRow(i))
	}

	if lv.scrollOffset > 0 {
		lines[2] = lipgloss.NewStyle().Foreground(colorDim).Render("  ▲ more")
	}
	if end < len(lv.visible) {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorDim).Render("  ▼ more"))
	}
	return strings.Join(lines, "\n")
}

func (lv *LogView) renderFilterBar() string {
	var chips []string
	labels := map[models.LogType]string{
		models.LogTypeInfo:  "i:Info",
		models.LogTypeTool:  "t:Tools",
		models.LogTypeError: "e:Errors",
		models.LogTypeDebug: "d:Debug",
	}
	for _, t := range models.AllLogTypes {
		chip := labels[t]
		if lv.filter.IsActive(t) {
			chips = append(chips, filterOnStyle.Render(chip))
		} else {
			chips = append(chips, filterOffStyle.Render(chip))
		}
	}

	bar := strings.Join(chips, "  ")
	var searchPart string
	if lv.searching {
		searchPart = lv.search.View()
	} else if q := lv.filter.Query(); q != "" {
		searchPart = searchLabelStyle.Render("search: ") + filterOnStyle.Render(q)
	} else {
		searchPart = searchLabelStyle.Render("/ to search")
	}
	return bar + "   " + searchPart
}

func (lv *LogView) renderColumnHeader() string {
	header := fmt.Sprintf("  %-10s %-6s %s", "Time", "Type", "Message")
	return lipgloss.NewStyle().Foreground(colorDim).Bold(true).Render(header)
}

func (lv *LogView) renderRow(i int) string {
	entry := lv.visible[i]
	timeStr := entry.Timestamp.Local().Format("15:04:05")
	typeStr := logTypeStyle(string(entry.Type)).Render(fmt.Sprintf("%-6s", entry.Type))

	maxMsg := lv.width - 22
	if maxMsg < 10 {
		maxMsg = 10
	}
	msg := ansi.Truncate(firstLine(entry.Message), maxMsg, "…")

	line := fmt.Sprintf("  %-10s %s %s", timeStr, typeStr, msg)
	if i == lv.cursor {
		return selectedItemStyle.Width(lv.width).Render(line)
	}
	return line
}
