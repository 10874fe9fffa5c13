// Package cmd wires the CLI subcommands: server, migrate and seed.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd is the base command; it does nothing by itself.
var rootCmd = &cobra.Command{
	Use:   "energymon",
	Short: "Household energy monitoring backend",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is fine; environment variables still apply.
		_ = godotenv.Load()
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
