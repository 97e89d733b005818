package main

import (
	"log"
	"log/slog"

	"github.com/opex-tool/config"
	"github.com/opex-tool/database"
	"github.com/opex-tool/utils"
)

func main() {
	config.LoadEnv()
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := utils.NewLogger(cfg.LogLevel, cfg.LogFormat)

	// Connect without migrating, then migrate explicitly so failures are reported here
	cfg.AutoMigrate = false
	db, err := database.Connect(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	logger.Info("starting schema sync", slog.Int("models", len(database.Models)))
	if err := database.Migrate(db, logger); err != nil {
		log.Fatalf("Schema sync failed: %v", err)
	}
	logger.Info("schema sync completed")
}
