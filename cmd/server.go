package cmd

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/hausenergie/energymon/internal/config"
	"github.com/hausenergie/energymon/internal/database"
	"github.com/hausenergie/energymon/internal/gsi"
	"github.com/hausenergie/energymon/internal/handler"
	"github.com/hausenergie/energymon/internal/queue"
	"github.com/hausenergie/energymon/internal/repository"
	"github.com/hausenergie/energymon/internal/router"
)

// serverCmd starts the HTTP API and the background reading consumer.
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the energy monitoring API server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("database connect failed: %v", err)
		}
		defer db.Close()

		users := repository.NewUserRepo(db)
		tokens := repository.NewTokenRepo(db)
		rooms := repository.NewRoomRepo(db)
		devices := repository.NewDeviceRepo(db)
		consumption := repository.NewConsumptionRepo(db)

		h := router.Handlers{
			Auth:        handler.NewAuthHandler(cfg, users, tokens),
			Rooms:       handler.NewRoomHandler(rooms, devices),
			Devices:     handler.NewDeviceHandler(devices),
			Consumption: handler.NewConsumptionHandler(users, consumption),
			Users:       handler.NewUserHandler(users),
			GSI:         handler.NewGSIHandler(users, gsi.NewClient(cfg.GSIBaseURL)),
		}

		// Optional: cache and rate limiting degrade to no-ops when Redis
		// is unreachable.
		rdb := config.NewRedisClient()

		e := echo.New()
		router.Register(e, cfg, rdb, h)

		// Queued meter readings are persisted by a background consumer so
		// broker downtime never blocks HTTP requests.
		go func() {
			if err := queue.StartReadingConsumer(devices); err != nil {
				log.Printf("reading consumer stopped: %v", err)
			}
		}()

		addr := ":" + cfg.Port
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
