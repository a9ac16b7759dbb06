package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cozycrafters/cozyreq/internal/store"
)

const storeTimeout = 5 * time.Second

func loadRunCmd(db *store.DB, runID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		run, err := db.Run(ctx, runID)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load run: %w", err)}
		}
		return RunLoadedMsg{Run: run}
	}
}

func loadToolCallsCmd(db *store.DB, runID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		calls, err := db.ToolCalls(ctx, runID)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load tool calls: %w", err)}
		}
		return ToolCallsLoadedMsg{Calls: calls}
	}
}

func loadLogsCmd(db *store.DB, runID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		entries, err := db.Logs(ctx, runID)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load logs: %w", err)}
		}
		return LogsLoadedMsg{Entries: entries}
	}
}

func loadStatsCmd(db *store.DB, runID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		stats, err := db.Statistics(ctx, runID)
		if err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to load statistics: %w", err)}
		}
		return StatsLoadedMsg{Stats: stats}
	}
}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}
