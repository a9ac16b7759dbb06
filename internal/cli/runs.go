package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cozycrafters/cozyreq/internal/config"
	"github.com/cozycrafters/cozyreq/internal/models"
	"github.com/cozycrafters/cozyreq/internal/store"
)

var runsCmd = &cobra.Command{
	Use:     "runs",
	Aliases: []string{"ls"},
	Short:   "List recorded agent runs",
	RunE:    runRunsList,
}

func runRunsList(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	runs, err := db.Runs(ctx)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded. Run 'cozyreq init --demo' to seed a sample run.")
		return nil
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	for _, run := range runs {
		badge, style := runBadge(run.Status)
		line := fmt.Sprintf("  #%04d  %s %-10s  %s  %s",
			run.RunNumber,
			style.Render(badge),
			style.Render(string(run.Status)),
			styleValue.Render(run.StartTime.Format("2006-01-02 15:04:05")),
			styleLabel.Render(runDurationLabel(run)),
		)
		fmt.Println(ansi.Truncate(line, width, "…"))
		fmt.Printf("        %s\n", styleHint.Render(run.ID))
	}
	return nil
}

func runBadge(status models.RunStatus) (string, lipgloss.Style) {
	switch status {
	case models.RunStatusCompleted:
		return "✓", badgeCompleted
	case models.RunStatusFailed:
		return "✗", badgeFailed
	default:
		return "●", badgeRunning
	}
}

func runDurationLabel(run models.AgentRun) string {
	d, done := run.Duration()
	if !done {
		d = time.Since(run.StartTime)
	}
	label := fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
	if !done {
		label += " (running)"
	}
	return label
}

// openDatabase resolves the configured path and opens the store for
// subcommands that read run records.
func openDatabase() (*store.DB, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDatabasePath(settings)
	if err != nil {
		return nil, err
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w (run 'cozyreq init' first)", err)
	}
	return db, nil
}
