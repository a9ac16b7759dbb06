package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// renderStatusBar draws the bottom hint bar, or the current error.
func renderStatusBar(m *Model, width int) string {
	if m.err != nil {
		msg := " Error: " + m.err.Error()
		return statusBarStyle.Width(width).Foreground(colorRed).
			Render(ansi.Truncate(msg, width, "…"))
	}

	hints := [][2]string{
		{"j/k", "navigate"},
		{"1/2", "screens"},
	}
	if m.screen == screenLogs {
		hints = append(hints,
			[2]string{"i/t/e/d", "filters"},
			[2]string{"a", "all/none"},
			[2]string{"/", "search"},
		)
	}
	hints = append(hints, [2]string{"?", "help"}, [2]string{"q", "quit"})

	var parts []string
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h[0])+" "+hintStyle.Render(h[1]))
	}
	bar := " " + strings.Join(parts, "  ")
	return statusBarStyle.Width(width).Render(ansi.Truncate(bar, width, "…"))
}
