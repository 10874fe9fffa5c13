package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/hausenergie/energymon/internal/config"
	"github.com/hausenergie/energymon/internal/database"
	"github.com/hausenergie/energymon/internal/seed"
)

// seedCmd wipes the tables and loads the demo households, devices and 30
// days of synthetic hourly readings.  Destructive; meant for dev setups.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo dataset (destructive)",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("database connect failed: %v", err)
		}
		defer db.Close()

		if err := seed.Run(cmd.Context(), db, cfg.BcryptCost); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		log.Println("seed complete")
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
