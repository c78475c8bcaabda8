// main.go
package main

import (
	"context"
	"log"

	"hotel-booking/cmd"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/jobs"
	"hotel-booking/internal/ledger"
	"hotel-booking/internal/wire"
	"hotel-booking/pkg/cache"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Load the availability ledger dari storage
	ctx := context.Background()
	store := repository.NewLedgerStore(repos.Room, repos.Reservation)
	availabilityLedger, err := ledger.Load(ctx, store, logger)
	if err != nil {
		logger.Fatal("Failed to load availability ledger", zap.Error(err))
	}

	// Availability cache is optional; tanpa redis semua query jalan
	// langsung ke ledger
	availability := cache.NewAvailabilityCache(config.Redis, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, availabilityLedger, availability, config, logger)

	// First-run seeding
	if config.Seed.DefaultRooms {
		if err := app.Service.Room.SeedDefaultRooms(ctx); err != nil {
			logger.Warn("Failed to seed default rooms", zap.Error(err))
		}
	}
	if err := app.Service.Auth.SeedAdmin(ctx); err != nil {
		logger.Warn("Failed to seed admin account", zap.Error(err))
	}

	// Daily housekeeping jobs
	c := cron.New()
	if err := jobs.InitCronJobs(c, repos.Session, availabilityLedger, logger); err != nil {
		logger.Fatal("Failed to initialize cron jobs", zap.Error(err))
	}
	defer c.Stop()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
