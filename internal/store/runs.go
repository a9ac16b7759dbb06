package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cozycrafters/cozyreq/internal/models"
)

// Timestamps are stored as fixed-width UTC text so that SQLite's
// lexicographic TEXT comparison orders them chronologically. RFC3339Nano
// trims trailing fractional zeros, producing variable-width strings that
// sort wrong for sub-second values ("...00.5Z" after "...00.55Z").
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	// RFC3339Nano parsing treats fractional seconds as optional, so this
	// reads both the fixed-width form and rows written by other tooling
	// with shorter or absent fractions.
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("store: parse timestamp %q: %w", s, err)
	}
	return t, nil
}

// Run returns the agent run with the given ID.
func (d *DB) Run(ctx context.Context, runID string) (models.AgentRun, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT id, run_number, start_time, end_time, status
		 FROM agent_runs WHERE id = ?`, runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AgentRun{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return run, err
}

// LatestRun returns the run with the highest run number, or ErrRunNotFound
// when the database holds no runs at all.
func (d *DB) LatestRun(ctx context.Context) (models.AgentRun, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT id, run_number, start_time, end_time, status
		 FROM agent_runs ORDER BY run_number DESC LIMIT 1`)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AgentRun{}, fmt.Errorf("%w: no runs recorded", ErrRunNotFound)
	}
	return run, err
}

// Runs returns every recorded run, newest first.
func (d *DB) Runs(ctx context.Context) ([]models.AgentRun, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, run_number, start_time, end_time, status
		 FROM agent_runs ORDER BY run_number DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	defer rows.Close()

	var runs []models.AgentRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (models.AgentRun, error) {
	var (
		run       models.AgentRun
		startTime string
		endTime   sql.NullString
		status    string
	)
	if err := row.Scan(&run.ID, &run.RunNumber, &startTime, &endTime, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AgentRun{}, err
		}
		return models.AgentRun{}, fmt.Errorf("store: scan run: %w", err)
	}

	var err error
	if run.StartTime, err = parseTime(startTime); err != nil {
		return models.AgentRun{}, err
	}
	if endTime.Valid {
		t, err := parseTime(endTime.String)
		if err != nil {
			return models.AgentRun{}, err
		}
		run.EndTime = &t
	}
	if run.Status, err = models.ParseRunStatus(status); err != nil {
		return models.AgentRun{}, err
	}
	return run, nil
}
