package main

import (
	"flag"

	"travel_backend/internal/config"
	"travel_backend/internal/database"
	"travel_backend/internal/logger"
)

// dbtool migrates the schema and optionally loads catalogue content from a
// JSON seed file.
//
//	go run ./cmd/dbtool -seed config/seed.json
func main() {
	seedPath := flag.String("seed", "", "path to a JSON seed file")
	skipMigrate := flag.Bool("no-migrate", false, "skip AutoMigrate")
	flag.Parse()

	if err := config.LoadConfig(); err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)

	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Close(db)

	if !*skipMigrate {
		if err := database.AutoMigrate(db); err != nil {
			logger.Fatal("Migration failed", "error", err)
		}
		logger.Info("Schema migrated")
	}

	if err := database.SeedFirstAdmin(db, cfg); err != nil {
		logger.Fatal("Admin seed failed", "error", err)
	}

	if *seedPath != "" {
		if err := database.SeedFromJSON(db, *seedPath); err != nil {
			logger.Fatal("Seed failed", "error", err, "path", *seedPath)
		}
		logger.Info("Seed loaded", "path", *seedPath)
	}
}
