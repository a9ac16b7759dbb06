package models

import (
	"fmt"
	"time"
)

// RunStatus represents the lifecycle state of an agent run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// ParseRunStatus validates a run status read from an external source.
func ParseRunStatus(s string) (RunStatus, error) {
	switch RunStatus(s) {
	case RunStatusRunning, RunStatusCompleted, RunStatusFailed:
		return RunStatus(s), nil
	}
	return "", fmt.Errorf("models: invalid run status %q", s)
}

// AgentRun is one execution session of the monitored agent.
type AgentRun struct {
	ID        string
	RunNumber int
	StartTime time.Time
	EndTime   *time.Time // nil while the run is still in progress
	Status    RunStatus
}

// Duration returns the run's elapsed time. It reports false until the
// run has an end time.
func (r AgentRun) Duration() (time.Duration, bool) {
	if r.EndTime == nil {
		return 0, false
	}
	return r.EndTime.Sub(r.StartTime), true
}
