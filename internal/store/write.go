package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cozycrafters/cozyreq/internal/models"
)

// The write side is used by the recording agent and by the demo seeder.
// The dashboard itself never mutates stored records.

// InsertRun records a new agent run. A zero ID is assigned a fresh UUID.
func (d *DB) InsertRun(ctx context.Context, run models.AgentRun) (models.AgentRun, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.Status == "" {
		run.Status = models.RunStatusRunning
	}
	var endTime *string
	if run.EndTime != nil {
		s := formatTime(*run.EndTime)
		endTime = &s
	}
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO agent_runs (id, run_number, start_time, end_time, status)
		 VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.RunNumber, formatTime(run.StartTime), endTime, string(run.Status))
	if err != nil {
		return models.AgentRun{}, fmt.Errorf("store: insert run: %w", err)
	}
	return run, nil
}

// CompleteRun closes out a run with a final status and end time.
func (d *DB) CompleteRun(ctx context.Context, run models.AgentRun) error {
	if run.EndTime == nil {
		return fmt.Errorf("store: complete run %s: end time required", run.ID)
	}
	res, err := d.db.ExecContext(ctx,
		`UPDATE agent_runs SET end_time = ?, status = ? WHERE id = ?`,
		formatTime(*run.EndTime), string(run.Status), run.ID)
	if err != nil {
		return fmt.Errorf("store: complete run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, run.ID)
	}
	return nil
}

// InsertToolCall records a tool call. A zero ID is assigned a fresh UUID.
func (d *DB) InsertToolCall(ctx context.Context, call models.ToolCall) (models.ToolCall, error) {
	if call.ID == "" {
		call.ID = uuid.NewString()
	}
	var response, resultSummary *string
	if call.Response != nil {
		response = call.Response
	}
	if call.ResultSummary != nil {
		resultSummary = call.ResultSummary
	}
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO tool_calls (id, run_id, sequence_number, tool_name, status,
		                         timestamp, duration, request, response, size,
		                         summary, result_summary)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		call.ID, call.RunID, call.SequenceNumber, call.ToolName,
		string(call.Status), formatTime(call.Timestamp), call.Duration,
		call.Request, response, call.Size, call.Summary, resultSummary)
	if err != nil {
		return models.ToolCall{}, fmt.Errorf("store: insert tool call: %w", err)
	}
	return call, nil
}

// InsertLog records a log entry. A zero ID is assigned a fresh UUID.
func (d *DB) InsertLog(ctx context.Context, entry models.LogEntry) (models.LogEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	var metadata *string
	if entry.Metadata != "" {
		metadata = &entry.Metadata
	}
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO logs (id, run_id, timestamp, log_type, message, metadata)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.RunID, formatTime(entry.Timestamp),
		string(entry.Type), entry.Message, metadata)
	if err != nil {
		return models.LogEntry{}, fmt.Errorf("store: insert log entry: %w", err)
	}
	return entry, nil
}
