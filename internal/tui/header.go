package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/cozycrafters/cozyreq/internal/models"
)

// renderHeader draws the top bar: app title, run summary, and screen tabs.
func renderHeader(run models.AgentRun, screen int, width int) string {
	title := headerStyle.Foreground(colorCyan).Render("AI Agent Monitor")

	runPart := lipgloss.NewStyle().Foreground(colorYellow).Render(
		fmt.Sprintf("  Run #%d", run.RunNumber))

	d, done := run.Duration()
	if !done {
		d = time.Since(run.StartTime)
	}
	total := int(d.Seconds())
	durationStr := fmt.Sprintf("%02d:%02d", total/60, total%60)
	durPart := lipgloss.NewStyle().Foreground(colorDim).Render(" │ Duration: " + durationStr)

	statusStyle := lipgloss.NewStyle().Foreground(colorYellow)
	if run.Status == models.RunStatusCompleted {
		statusStyle = lipgloss.NewStyle().Foreground(colorGreen)
	} else if run.Status == models.RunStatusFailed {
		statusStyle = lipgloss.NewStyle().Foreground(colorRed)
	}
	statusPart := lipgloss.NewStyle().Foreground(colorDim).Render(" │ Status: ") +
		statusStyle.Render(string(run.Status))

	tabs := renderTabs(screen)

	left := title + runPart + durPart + statusPart
	gap := width - lipgloss.Width(left) - lipgloss.Width(tabs)
	if gap < 1 {
		gap = 1
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + tabs
}

func renderTabs(screen int) string {
	names := []string{"1:Tool Calls", "2:Logs"}
	var parts []string
	for i, name := range names {
		if i == screen {
			parts = append(parts, activeTabStyle.Render(name))
		} else {
			parts = append(parts, inactiveTabStyle.Render(name))
		}
	}
	return parts[0] + tabSepStyle.Render(" │ ") + parts[1]
}
