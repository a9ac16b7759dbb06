package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cozycrafters/cozyreq/internal/config"
	"github.com/cozycrafters/cozyreq/internal/models"
	"github.com/cozycrafters/cozyreq/internal/store"
)

var flagDemo bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the cozyreq home directory and run database",
	Long: `Create the cozyreq home directory and run database.

This will:
  1. Create ~/.cozyreq/ if it does not exist
  2. Write a default settings.yaml if none exists
  3. Create the run database with its schema

With --demo, a sample agent run is recorded so the dashboard has
something to show.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagDemo, "demo", false, "record a sample agent run")
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := config.EnsureHomeDir(); err != nil {
		return err
	}

	settingsPath, err := config.SettingsPath()
	if err != nil {
		return err
	}
	if !config.FileExists(settingsPath) {
		if err := config.SaveSettings(config.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to write settings: %w", err)
		}
		fmt.Printf("%s %s\n", styleSuccess.Render("Created"), styleValue.Render(settingsPath))
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	dbPath, err := resolveDatabasePath(settings)
	if err != nil {
		return err
	}

	db, err := store.Init(dbPath)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()
	fmt.Printf("%s %s\n", styleSuccess.Render("Database"), styleValue.Render(dbPath))

	if flagDemo {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		run, err := seedDemoRun(ctx, db)
		if err != nil {
			return fmt.Errorf("failed to record demo run: %w", err)
		}
		fmt.Printf("%s run #%d (%s)\n", styleSuccess.Render("Recorded"), run.RunNumber, run.ID)
	}

	fmt.Println(styleHint.Render("Run 'cozyreq' to open the dashboard."))
	return nil
}

// seedDemoRun records a small completed run so a fresh install has
// something to browse.
func seedDemoRun(ctx context.Context, db *store.DB) (models.AgentRun, error) {
	runs, err := db.Runs(ctx)
	if err != nil {
		return models.AgentRun{}, err
	}

	start := time.Now().Add(-3 * time.Minute)
	run, err := db.InsertRun(ctx, models.AgentRun{
		RunNumber: len(runs) + 1,
		StartTime: start,
		Status:    models.RunStatusRunning,
	})
	if err != nil {
		return models.AgentRun{}, err
	}

	type demoCall struct {
		name     string
		status   models.CallStatus
		duration float64
		request  string
		response string
		summary  string
		result   string
	}
	calls := []demoCall{
		{
			name: "read_file", status: models.CallStatusSuccess, duration: 0.031,
			request:  `{"path": "README.md"}`,
			response: `{"content": "# Demo project\n", "lines": 1}`,
			summary:  "Read README.md", result: "1 line",
		},
		{
			name: "search_code", status: models.CallStatusSuccess, duration: 0.412,
			request:  `{"pattern": "TODO", "glob": "**/*.go"}`,
			response: `{"matches": ["cmd/main.go:17"]}`,
			summary:  "Search for TODO markers", result: "1 match",
		},
		{
			name: "run_tests", status: models.CallStatusFailed, duration: 8.209,
			request: `{"package": "./..."}`,
			summary: "Run the test suite", result: "2 tests failed",
		},
		{
			name: "edit_file", status: models.CallStatusSuccess, duration: 0.058,
			request:  `{"path": "cmd/main.go", "patch": "fix off-by-one"}`,
			response: `{"applied": true}`,
			summary:  "Fix the failing boundary check", result: "patch applied",
		},
		{
			name: "run_tests", status: models.CallStatusRunning,
			request: `{"package": "./..."}`,
			summary: "Re-run the test suite",
		},
	}

	ts := start
	for i, c := range calls {
		ts = ts.Add(time.Duration(2+i) * time.Second)
		call := models.ToolCall{
			RunID:          run.ID,
			SequenceNumber: i + 1,
			ToolName:       c.name,
			Status:         c.status,
			Timestamp:      ts,
			Request:        c.request,
			Summary:        c.summary,
		}
		if c.status == models.CallStatusSuccess || c.status == models.CallStatusFailed {
			d := c.duration
			call.Duration = &d
			r := c.result
			call.ResultSummary = &r
		}
		if c.response != "" {
			resp := c.response
			call.Response = &resp
			size := int64(len(c.response))
			call.Size = &size
		}
		if _, err := db.InsertToolCall(ctx, call); err != nil {
			return models.AgentRun{}, err
		}

		logType := models.LogTypeTool
		if c.status == models.CallStatusFailed {
			logType = models.LogTypeError
		}
		if _, err := db.InsertLog(ctx, models.LogEntry{
			RunID:     run.ID,
			Timestamp: ts,
			Type:      logType,
			Message:   fmt.Sprintf("%s: %s", c.name, c.summary),
		}); err != nil {
			return models.AgentRun{}, err
		}
	}

	extra := []models.LogEntry{
		{Type: models.LogTypeInfo, Message: "Agent session started"},
		{Type: models.LogTypeDebug, Message: "Loaded 3 context files"},
		{Type: models.LogTypeInfo, Message: "Waiting for test results"},
	}
	for i, e := range extra {
		e.RunID = run.ID
		e.Timestamp = start.Add(time.Duration(i) * 500 * time.Millisecond)
		if _, err := db.InsertLog(ctx, e); err != nil {
			return models.AgentRun{}, err
		}
	}

	return run, nil
}
