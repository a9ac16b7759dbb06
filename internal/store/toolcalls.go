package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cozycrafters/cozyreq/internal/models"
)

// ToolCalls returns every tool call for a run, ascending by sequence number.
func (d *DB) ToolCalls(ctx context.Context, runID string) ([]models.ToolCall, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, run_id, sequence_number, tool_name, status, timestamp,
		        duration, request, response, size, summary, result_summary
		 FROM tool_calls WHERE run_id = ? ORDER BY sequence_number`, runID)
	if err != nil {
		return nil, fmt.Errorf("store: list tool calls: %w", err)
	}
	defer rows.Close()

	var calls []models.ToolCall
	for rows.Next() {
		var (
			call          models.ToolCall
			status        string
			timestamp     string
			duration      sql.NullFloat64
			response      sql.NullString
			size          sql.NullInt64
			resultSummary sql.NullString
		)
		if err := rows.Scan(&call.ID, &call.RunID, &call.SequenceNumber,
			&call.ToolName, &status, &timestamp, &duration, &call.Request,
			&response, &size, &call.Summary, &resultSummary); err != nil {
			return nil, fmt.Errorf("store: scan tool call: %w", err)
		}

		if call.Status, err = models.ParseCallStatus(status); err != nil {
			return nil, err
		}
		if call.Timestamp, err = parseTime(timestamp); err != nil {
			return nil, err
		}
		if duration.Valid {
			call.Duration = &duration.Float64
		}
		if response.Valid {
			call.Response = &response.String
		}
		if size.Valid {
			call.Size = &size.Int64
		}
		if resultSummary.Valid {
			call.ResultSummary = &resultSummary.String
		}
		calls = append(calls, call)
	}
	return calls, rows.Err()
}

// Statistics summarizes the tool calls of a run.
type Statistics struct {
	Total     int
	Succeeded int
	Running   int
	Failed    int
}

// Statistics returns tool-call counts for a run.
func (d *DB) Statistics(ctx context.Context, runID string) (Statistics, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COUNT(CASE WHEN status = 'success' THEN 1 END),
		        COUNT(CASE WHEN status = 'running' THEN 1 END),
		        COUNT(CASE WHEN status = 'failed' THEN 1 END)
		 FROM tool_calls WHERE run_id = ?`, runID)

	var stats Statistics
	if err := row.Scan(&stats.Total, &stats.Succeeded, &stats.Running, &stats.Failed); err != nil {
		return Statistics{}, fmt.Errorf("store: run statistics: %w", err)
	}
	return stats, nil
}
