// Package cli implements the cozyreq CLI commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/cozycrafters/cozyreq/internal/config"
	"github.com/cozycrafters/cozyreq/internal/tui"
)

var (
	flagDatabase string
	flagRun      string
	flagScreen   string
)

var rootCmd = &cobra.Command{
	Use:   "cozyreq",
	Short: "Terminal dashboard for monitoring AI agent runs",
	Long: `Cozyreq shows what an AI agent did during a run: every tool call with
its request and response, and the run's log stream with filtering and search.
Running cozyreq with no subcommand opens the dashboard on the latest run.`,
	RunE: runDashboard,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDatabase, "db", "", "path to the run database (overrides settings)")
	rootCmd.Flags().StringVar(&flagRun, "run", "", "run ID to open (default: latest run)")
	rootCmd.Flags().StringVar(&flagScreen, "screen", "", "screen to open first: toolcalls or logs")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	dbPath, err := resolveDatabasePath(settings)
	if err != nil {
		return err
	}

	screen := flagScreen
	if screen == "" {
		screen = settings.StartScreen
	}
	return tui.Run(dbPath, flagRun, screen)
}

// resolveDatabasePath applies the flag on top of the usual resolution
// order (environment variable, settings file, default location).
func resolveDatabasePath(settings *config.Settings) (string, error) {
	if flagDatabase != "" {
		return flagDatabase, nil
	}
	return config.DatabasePath(settings)
}
