package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp draws the help overlay content.
func renderHelp(width int) string {
	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Global", [][2]string{
			{"1", "Tool Calls screen"},
			{"2", "Logs screen"},
			{"r", "reload from database"},
			{"?", "toggle this help"},
			{"q / Ctrl+c", "quit"},
		}},
		{"Tool Calls", [][2]string{
			{"j / ↓", "next tool call"},
			{"k / ↑", "previous tool call"},
			{"J / K", "scroll detail panel"},
		}},
		{"Logs", [][2]string{
			{"j / k", "move cursor"},
			{"i / t / e / d", "toggle INFO / TOOL / ERROR / DEBUG"},
			{"a", "all filters on, or all off"},
			{"/", "search messages"},
			{"Enter", "accept search"},
			{"Esc", "clear search"},
		}},
	}

	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Render(sec.title))
		b.WriteString("\n")
		for _, k := range sec.keys {
			b.WriteString("  ")
			b.WriteString(keyStyle.Render(padRight(k[0], 14)))
			b.WriteString(hintStyle.Render(k[1]))
			b.WriteString("\n")
		}
	}

	maxWidth := width - 10
	if maxWidth > 60 {
		maxWidth = 60
	}
	return overlayStyle.Width(maxWidth).Render(b.String())
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
