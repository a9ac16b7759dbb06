package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/cozycrafters/cozyreq/internal/models"
)

// Logs returns every log entry for a run, ascending by timestamp.
func (d *DB) Logs(ctx context.Context, runID string) ([]models.LogEntry, error) {
	return d.SearchLogs(ctx, runID, "", nil)
}

// SearchLogs returns log entries for a run, ascending by timestamp,
// pre-filtered in SQL. An empty query matches every message; a nil types
// slice matches every log type. This is a bulk pre-filter for one-shot
// consumers; the interactive dashboard filters the full in-memory slice
// through the session engine instead, so keystrokes never hit the database.
func (d *DB) SearchLogs(ctx context.Context, runID, query string, types []models.LogType) ([]models.LogEntry, error) {
	sb := strings.Builder{}
	sb.WriteString(`SELECT id, run_id, timestamp, log_type, message, metadata
		 FROM logs WHERE run_id = ?`)
	args := []any{runID}

	if query != "" {
		sb.WriteString(" AND message LIKE ?")
		args = append(args, "%"+query+"%")
	}
	if len(types) > 0 {
		sb.WriteString(" AND log_type IN (?" + strings.Repeat(",?", len(types)-1) + ")")
		for _, t := range types {
			if _, err := models.ParseLogType(string(t)); err != nil {
				return nil, err
			}
			args = append(args, string(t))
		}
	}
	sb.WriteString(" ORDER BY timestamp")

	rows, err := d.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("store: list logs: %w", err)
	}
	defer rows.Close()

	var entries []models.LogEntry
	for rows.Next() {
		var (
			entry     models.LogEntry
			timestamp string
			logType   string
			metadata  sql.NullString
		)
		if err := rows.Scan(&entry.ID, &entry.RunID, &timestamp, &logType,
			&entry.Message, &metadata); err != nil {
			return nil, fmt.Errorf("store: scan log entry: %w", err)
		}
		if entry.Timestamp, err = parseTime(timestamp); err != nil {
			return nil, err
		}
		if entry.Type, err = models.ParseLogType(logType); err != nil {
			return nil, err
		}
		entry.Metadata = metadata.String
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
