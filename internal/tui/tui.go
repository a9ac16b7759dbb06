// Package tui implements the interactive dashboard for cozyreq.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cozycrafters/cozyreq/internal/models"
	"github.com/cozycrafters/cozyreq/internal/store"
)

// Run opens the database, resolves the run to display, and launches the
// dashboard. With an empty runID the most recent run is shown.
func Run(dbPath, runID, startScreen string) error {
	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	var run models.AgentRun
	if runID == "" {
		run, err = db.LatestRun(ctx)
	} else {
		run, err = db.Run(ctx, runID)
	}
	if err != nil {
		if errors.Is(err, store.ErrRunNotFound) {
			return fmt.Errorf("no agent runs recorded yet. Run 'cozyreq init --demo' to seed a sample run")
		}
		return fmt.Errorf("failed to load run: %w", err)
	}

	p := tea.NewProgram(
		NewModel(db, run, startScreen),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}
