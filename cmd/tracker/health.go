package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

var (
	healthURL     string
	healthTimeout time.Duration
)

func init() {
	healthCmd.Flags().StringVar(&healthURL, "url", "http://localhost:8080", "tracker server base URL")
	healthCmd.Flags().DurationVar(&healthTimeout, "timeout", 3*time.Second, "request timeout")
}

// healthCmd is used as the container HEALTHCHECK.
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check a running server's readiness",
	Long: `Query /readyz on a running server and exit non-zero unless it reports
healthy.

Examples:
  tracker health
  tracker health --url http://tracker:8080`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), healthTimeout)
		defer cancel()

		resp, err := trackersdk.NewClient(healthURL).GetReadiness(ctx)
		if err != nil {
			return fmt.Errorf("readiness check failed: %w", err)
		}
		if resp.Checks == nil {
			fmt.Fprintln(cmd.OutOrStdout(), resp.Status)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (db: %s, signer: %s)\n",
			resp.Status, resp.Checks.Database, resp.Checks.Signer)
		return nil
	},
}
