// Package main runs the tracker API server.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/tracker/internal/tracker/app"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Multi-tenant project tracker API",
	Long: `tracker serves the project tracker HTTP API.

Running it without a subcommand is the same as "tracker serve". All runtime
settings come from the environment (TRACKER_*, LOG_*, PORT, RATELIMIT_*).`,
	Version:       app.BuildVersion,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(healthCmd)
}
