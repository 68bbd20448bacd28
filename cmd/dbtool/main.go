package main

import (
	"beam-stacking-service/internal/adapters/repositories"
	"beam-stacking-service/internal/config"
	"beam-stacking-service/internal/platform/db"
	"beam-stacking-service/internal/platform/obs"
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// dbtool prepares a Postgres catalog: schema creation and seeding.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found (using environment variables)")
	}
	log.SetDefault(obs.NewLogger(os.Stderr, config.Get("LOG_LEVEL", "info")))

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal("open database", "err", err)
	}
	defer database.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/beams.yaml")
	if err := initAndSeed(database, seedPath); err != nil {
		log.Fatal("init and seed", "err", err)
	}
}

func initAndSeed(database *sql.DB, seedPath string) error {
	log.Info("initializing database schema")
	if err := repositories.InitSchema(database); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Info("schema ready")

	specs, err := repositories.LoadBeamSeed(seedPath)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Info("seeding database", "path", seedPath, "beams", len(specs))
	repo := repositories.NewSQLBeamRepository(database)
	if err := repo.PutBeams(context.Background(), specs); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Info("seeding complete")

	return nil
}
