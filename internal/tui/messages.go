package tui

import (
	"github.com/cozycrafters/cozyreq/internal/models"
	"github.com/cozycrafters/cozyreq/internal/store"
)

// RunLoadedMsg carries the run being displayed.
type RunLoadedMsg struct {
	Run models.AgentRun
}

// ToolCallsLoadedMsg carries the run's tool calls, ordered by sequence.
type ToolCallsLoadedMsg struct {
	Calls []models.ToolCall
}

// LogsLoadedMsg carries the run's full log list, ordered by timestamp.
type LogsLoadedMsg struct {
	Entries []models.LogEntry
}

// StatsLoadedMsg carries tool-call statistics for the header.
type StatsLoadedMsg struct {
	Stats store.Statistics
}

// ErrorMsg carries an error to display in the status bar.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}
