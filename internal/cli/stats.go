package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cozycrafters/cozyreq/internal/models"
	"github.com/cozycrafters/cozyreq/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats [run-id]",
	Short: "Show tool call statistics for a run",
	Long:  `Show tool call statistics for a run. Without an argument the latest run is used.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var run models.AgentRun
	if len(args) == 1 {
		run, err = db.Run(ctx, args[0])
	} else {
		run, err = db.LatestRun(ctx)
	}
	if err != nil {
		if errors.Is(err, store.ErrRunNotFound) {
			return fmt.Errorf("run not found")
		}
		return err
	}

	stats, err := db.Statistics(ctx, run.ID)
	if err != nil {
		return err
	}

	badge, style := runBadge(run.Status)
	fmt.Printf("  %s run #%d %s\n",
		styleBrand.Render("cozyreq"), run.RunNumber, style.Render(badge+" "+string(run.Status)))
	fmt.Printf("    %s    %s\n", styleLabel.Render("Started"), styleValue.Render(run.StartTime.Format("2006-01-02 15:04:05")))
	fmt.Printf("    %s   %s\n", styleLabel.Render("Duration"), styleValue.Render(runDurationLabel(run)))
	fmt.Printf("    %s %s\n", styleLabel.Render("Tool calls"), styleValue.Render(fmt.Sprintf("%d", stats.Total)))
	fmt.Printf("      %s  %s\n", badgeCompleted.Render("✓ succeeded"), styleValue.Render(fmt.Sprintf("%d", stats.Succeeded)))
	fmt.Printf("      %s    %s\n", badgeRunning.Render("● running"), styleValue.Render(fmt.Sprintf("%d", stats.Running)))
	fmt.Printf("      %s     %s\n", badgeFailed.Render("✗ failed"), styleValue.Render(fmt.Sprintf("%d", stats.Failed)))
	return nil
}
