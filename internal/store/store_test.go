package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cozycrafters/cozyreq/internal/models"
	"github.com/cozycrafters/cozyreq/internal/store"
)

func newTestDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Init(filepath.Join(t.TempDir(), "cozyreq.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedRun(t *testing.T, db *store.DB, runNumber int) models.AgentRun {
	t.Helper()
	run, err := db.InsertRun(context.Background(), models.AgentRun{
		RunNumber: runNumber,
		StartTime: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Status:    models.RunStatusRunning,
	})
	require.NoError(t, err)
	return run
}

func TestOpenMissingFileFails(t *testing.T) {
	_, err := store.Open(filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)
}

func TestInitIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cozyreq.db")
	db, err := store.Init(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = store.Init(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = store.Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestRunNotFound(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := db.Run(ctx, "nope")
	assert.ErrorIs(t, err, store.ErrRunNotFound)

	_, err = db.LatestRun(ctx)
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}

func TestRunRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	run := seedRun(t, db, 1)
	require.NotEmpty(t, run.ID)

	got, err := db.Run(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, 1, got.RunNumber)
	assert.Equal(t, models.RunStatusRunning, got.Status)
	assert.Nil(t, got.EndTime)

	_, ok := got.Duration()
	assert.False(t, ok, "a running run has no duration")

	end := run.StartTime.Add(90 * time.Second)
	run.EndTime = &end
	run.Status = models.RunStatusCompleted
	require.NoError(t, db.CompleteRun(ctx, run))

	got, err = db.Run(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, got.EndTime)
	assert.Equal(t, models.RunStatusCompleted, got.Status)

	d, ok := got.Duration()
	require.True(t, ok)
	assert.Equal(t, 90*time.Second, d)
}

func TestLatestRunPicksHighestNumber(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	seedRun(t, db, 1)
	want := seedRun(t, db, 3)
	seedRun(t, db, 2)

	got, err := db.LatestRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)

	runs, err := db.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, 3, runs[0].RunNumber, "runs are listed newest first")
}

func TestToolCallsOrderedBySequence(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	run := seedRun(t, db, 1)

	duration := 0.25
	response := `{"ok":true}`
	resultSummary := "done"
	var respSize int64 = 11

	for _, seq := range []int{2, 1, 3} {
		call := models.ToolCall{
			RunID:          run.ID,
			SequenceNumber: seq,
			ToolName:       "fetch",
			Status:         models.CallStatusSuccess,
			Timestamp:      run.StartTime.Add(time.Duration(seq) * time.Second),
			Duration:       &duration,
			Request:        `{"id":1}`,
			Response:       &response,
			Size:           &respSize,
			Summary:        "fetch record",
			ResultSummary:  &resultSummary,
		}
		_, err := db.InsertToolCall(ctx, call)
		require.NoError(t, err)
	}

	calls, err := db.ToolCalls(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, calls, 3)
	for i, call := range calls {
		assert.Equal(t, i+1, call.SequenceNumber)
	}
	require.NotNil(t, calls[0].Duration)
	assert.Equal(t, 0.25, *calls[0].Duration)
	require.NotNil(t, calls[0].Response)
	assert.Equal(t, response, *calls[0].Response)
}

func TestToolCallOptionalFieldsAbsent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	run := seedRun(t, db, 1)

	_, err := db.InsertToolCall(ctx, models.ToolCall{
		RunID:          run.ID,
		SequenceNumber: 1,
		ToolName:       "slow_tool",
		Status:         models.CallStatusRunning,
		Timestamp:      run.StartTime,
		Request:        "{}",
		Summary:        "in flight",
	})
	require.NoError(t, err)

	calls, err := db.ToolCalls(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Nil(t, calls[0].Duration)
	assert.Nil(t, calls[0].Response)
	assert.Nil(t, calls[0].Size)
	assert.Nil(t, calls[0].ResultSummary)
	assert.IsType(t, models.Running{}, calls[0].Outcome())
}

func TestLogsOrderedAndFiltered(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	run := seedRun(t, db, 1)

	seed := []struct {
		logType models.LogType
		message string
	}{
		{models.LogTypeInfo, "Agent started successfully"},
		{models.LogTypeTool, "Calling fetch_users"},
		{models.LogTypeError, "Agent error occurred"},
		{models.LogTypeDebug, "raw payload"},
		{models.LogTypeInfo, "Processing data"},
	}
	for i, s := range seed {
		_, err := db.InsertLog(ctx, models.LogEntry{
			RunID:     run.ID,
			Timestamp: run.StartTime.Add(time.Duration(i) * time.Second),
			Type:      s.logType,
			Message:   s.message,
		})
		require.NoError(t, err)
	}

	all, err := db.Logs(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "Agent started successfully", all[0].Message)

	infoOnly, err := db.SearchLogs(ctx, run.ID, "", []models.LogType{models.LogTypeInfo})
	require.NoError(t, err)
	require.Len(t, infoOnly, 2)

	// Type filter and search apply conjunctively, like the in-memory engine.
	matched, err := db.SearchLogs(ctx, run.ID, "agent", []models.LogType{models.LogTypeInfo})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Agent started successfully", matched[0].Message)
}

func TestLogsSubsecondTimestampOrdering(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	run := seedRun(t, db, 1)

	// Offsets chosen so a trailing-zero-trimmed encoding would misorder
	// them under text comparison (".5Z" sorts after ".55Z").
	offsets := []time.Duration{
		500 * time.Millisecond,
		550 * time.Millisecond,
		555 * time.Millisecond,
		time.Second,
	}
	for i, off := range offsets {
		_, err := db.InsertLog(ctx, models.LogEntry{
			RunID:     run.ID,
			Timestamp: run.StartTime.Add(off),
			Type:      models.LogTypeInfo,
			Message:   string(rune('a' + i)),
		})
		require.NoError(t, err)
	}

	logs, err := db.Logs(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, logs, len(offsets))
	for i, entry := range logs {
		assert.Equal(t, string(rune('a'+i)), entry.Message)
		assert.True(t, entry.Timestamp.Equal(run.StartTime.Add(offsets[i])))
	}
}

func TestSearchLogsRejectsUnknownType(t *testing.T) {
	db := newTestDB(t)
	run := seedRun(t, db, 1)

	_, err := db.SearchLogs(context.Background(), run.ID, "", []models.LogType{"BOGUS"})
	assert.Error(t, err)
}

func TestStatistics(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	run := seedRun(t, db, 1)

	statuses := []models.CallStatus{
		models.CallStatusSuccess, models.CallStatusSuccess,
		models.CallStatusRunning, models.CallStatusFailed,
		models.CallStatusQueued,
	}
	for i, status := range statuses {
		_, err := db.InsertToolCall(ctx, models.ToolCall{
			RunID:          run.ID,
			SequenceNumber: i + 1,
			ToolName:       "tool",
			Status:         status,
			Timestamp:      run.StartTime,
			Request:        "{}",
			Summary:        "s",
		})
		require.NoError(t, err)
	}

	stats, err := db.Statistics(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, store.Statistics{Total: 5, Succeeded: 2, Running: 1, Failed: 1}, stats)
}
