package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/cozycrafters/cozyreq/internal/models"
	"github.com/cozycrafters/cozyreq/internal/session"
	"github.com/cozycrafters/cozyreq/internal/store"
)

// Lines each timeline entry occupies in the list.
const callItemHeight = 4

// CallList is the tool-call timeline for the left pane. Cursor state lives
// in the session selection; the list only handles scrolling and drawing.
type CallList struct {
	selection    *session.Selection
	calls        []models.ToolCall
	stats        store.Statistics
	scrollOffset int
	height       int
}

// NewCallList creates an empty call list.
func NewCallList() *CallList {
	return &CallList{selection: session.NewSelection(nil)}
}

// SetCalls replaces the timeline and resets the selection to the first call.
func (cl *CallList) SetCalls(calls []models.ToolCall) *session.Selection {
	cl.calls = calls
	cl.selection = session.NewSelection(calls)
	cl.scrollOffset = 0
	return cl.selection
}

// SetStats updates the progress indicator data.
func (cl *CallList) SetStats(stats store.Statistics) {
	cl.stats = stats
}

// SetHeight sets the visible height in lines.
func (cl *CallList) SetHeight(h int) {
	cl.height = h
}

// Selection exposes the underlying selection controller.
func (cl *CallList) Selection() *session.Selection {
	return cl.selection
}

// MoveUp moves the cursor to the previous call.
func (cl *CallList) MoveUp() {
	if cl.selection.Prev() {
		cl.ensureVisible()
	}
}

// MoveDown moves the cursor to the next call.
func (cl *CallList) MoveDown() {
	if cl.selection.Next() {
		cl.ensureVisible()
	}
}

// visibleItems is how many timeline entries fit below the title, progress,
// and scroll indicator lines.
func (cl *CallList) visibleItems() int {
	n := (cl.height - 4) / callItemHeight
	if n < 1 {
		n = 1
	}
	return n
}

func (cl *CallList) ensureVisible() {
	cursor := cl.selection.Current()
	if cursor < cl.scrollOffset {
		cl.scrollOffset = cursor
	}
	if cursor >= cl.scrollOffset+cl.visibleItems() {
		cl.scrollOffset = cursor - cl.visibleItems() + 1
	}
}

// View renders the timeline.
func (cl *CallList) View(width int) string {
	if len(cl.calls) == 0 {
		return lipgloss.NewStyle().Foreground(colorDim).Render("No tool calls recorded for this run.")
	}

	var lines []string
	lines = append(lines, listTitleStyle.Render(
		fmt.Sprintf("Tool Call Timeline (%d calls)", len(cl.calls))))
	lines = append(lines, renderProgress(cl.stats, 20))

	end := cl.scrollOffset + cl.visibleItems()
	if end > len(cl.calls) {
		end = len(cl.calls)
	}

	dim := lipgloss.NewStyle().Foreground(colorDim)
	if cl.scrollOffset > 0 {
		lines = append(lines, dim.Render("  ▲ more"))
	} else {
		lines = append(lines, "")
	}

	for i := cl.scrollOffset; i < end; i++ {
		lines = append(lines, cl.renderItem(i, width))
	}

	if end < len(cl.calls) {
		lines = append(lines, dim.Render("  ▼ more"))
	}

	return strings.Join(lines, "\n")
}

func (cl *CallList) renderItem(i, width int) string {
	call := cl.calls[i]
	icon, style := callBadge(call.Status)
	selected := i == cl.selection.Current()

	title := fmt.Sprintf("%d. %s %s", call.SequenceNumber, icon, call.ToolName)
	if selected {
		title += " ◄──"
	}

	meta := fmt.Sprintf("   %s │ %s",
		call.Timestamp.Local().Format("15:04:05"),
		durationLabel(call))
	summary := "   " + ansi.Truncate(firstLine(call.Summary), width-4, "…")

	result := "   "
	if call.ResultSummary != nil {
		result += ansi.Truncate(firstLine(*call.ResultSummary), width-4, "…")
	}

	dim := lipgloss.NewStyle().Foreground(colorDim)
	block := []string{
		style.Render(ansi.Truncate(title, width-2, "…")),
		dim.Render(meta),
		dim.Render(summary),
		dim.Render(result),
	}
	if selected {
		for j, line := range block {
			block[j] = selectedItemStyle.Width(width).Render(line)
		}
	}
	return strings.Join(block, "\n")
}

func callBadge(status models.CallStatus) (string, lipgloss.Style) {
	switch status {
	case models.CallStatusSuccess:
		return "✓", callSuccessStyle
	case models.CallStatusRunning:
		return "⚡", callRunningStyle
	case models.CallStatusFailed:
		return "✗", callFailedStyle
	default:
		return "⏳", callQueuedStyle
	}
}

func durationLabel(call models.ToolCall) string {
	switch out := call.Outcome().(type) {
	case models.Completed:
		return fmt.Sprintf("%.3fs", out.Duration)
	case models.Failed:
		return fmt.Sprintf("%.3fs", out.Duration)
	case models.Running:
		return "Running…"
	default:
		return "Queued"
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// renderProgress draws a bar like "[=========>          ] 12/20 60%".
func renderProgress(stats store.Statistics, barWidth int) string {
	filled := 0
	if stats.Total > 0 {
		filled = stats.Succeeded * barWidth / stats.Total
	}
	bar := strings.Repeat("=", filled)
	if filled < barWidth {
		bar += ">"
	}
	if pad := barWidth - len(bar); pad > 0 {
		bar += strings.Repeat(" ", pad)
	}
	pct := 0
	if stats.Total > 0 {
		pct = stats.Succeeded * 100 / stats.Total
	}
	return progressStyle.Render(fmt.Sprintf("[%s] %d/%d %d%%", bar, stats.Succeeded, stats.Total, pct))
}
