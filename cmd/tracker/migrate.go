package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/tracker/internal/tracker/app"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	Long: `Apply all pending schema migrations to TRACKER_DATABASE_FILE and exit.

The server also migrates on start; this command exists so a deploy can run
migrations as a separate step.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := app.LoadConfig()
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		return app.Migrate(cfg, app.NewLogger(cfg))
	},
}
