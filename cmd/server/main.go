package main

import (
	"beam-stacking-service/internal/adapters/cache"
	"beam-stacking-service/internal/adapters/repositories"
	"beam-stacking-service/internal/api"
	"beam-stacking-service/internal/config"
	"beam-stacking-service/internal/domain"
	"beam-stacking-service/internal/platform/db"
	"beam-stacking-service/internal/platform/obs"
	"beam-stacking-service/internal/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, optional Redis) behind ports
// and starts the HTTP server.
func main() {
	cfg, dotenv, err := config.Load()
	if err != nil {
		log.Fatal("load config", "err", err)
	}

	logger := obs.NewLogger(os.Stderr, cfg.LogLevel)
	log.SetDefault(logger)
	if !dotenv {
		logger.Info("no .env file found (using environment variables)")
	}

	database, err := openDB(cfg)
	if err != nil {
		logger.Fatal("open database", "err", err)
	}
	defer database.Close()

	repo, err := initAndSeed(database, cfg)
	if err != nil {
		logger.Fatal("init catalog", "err", err)
	}

	var beams ports.BeamRepository = repo
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		pingErr := client.Ping(ctx).Err()
		cancel()

		if pingErr != nil {
			logger.Warn("redis not available, running without cache", "addr", cfg.RedisAddr, "err", pingErr)
		} else {
			cached, err := cache.NewRedisBeamCache(client, repo, cfg.RedisTTL)
			if err != nil {
				logger.Fatal("beam cache", "err", err)
			}
			beams = cached
			logger.Info("redis connected", "addr", cfg.RedisAddr, "ttl", cfg.RedisTTL)
		}
	}

	router := api.NewRouter(beams, cfg.Stack, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr, "db", cfg.DBDriver, "max_width_mm", cfg.Stack.MaxWidthMM)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server", "err", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}

func openDB(cfg *config.Config) (*sql.DB, error) {
	if cfg.DBDriver == "postgres" {
		return db.Open(cfg.DatabaseURL)
	}

	database, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", cfg.DBPath, err)
	}

	if err := database.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", cfg.DBPath, err)
	}

	return database, nil
}

type seedableRepository interface {
	ports.BeamRepository
	PutBeams(ctx context.Context, specs []domain.BeamSpec) error
}

// Initialize schema and load the catalog seed on startup for local runs.
func initAndSeed(database *sql.DB, cfg *config.Config) (ports.BeamRepository, error) {
	if err := repositories.InitSchema(database); err != nil {
		return nil, fmt.Errorf("init and seed: %w", err)
	}

	var repo seedableRepository
	if cfg.DBDriver == "postgres" {
		repo = repositories.NewSQLBeamRepository(database)
	} else {
		repo = repositories.NewSqliteBeamRepository(database)
	}

	if _, err := os.Stat(cfg.SeedPath); errors.Is(err, os.ErrNotExist) {
		log.Info("no catalog seed file, serving stored catalog", "path", cfg.SeedPath)
		return repo, nil
	}

	specs, err := repositories.LoadBeamSeed(cfg.SeedPath)
	if err != nil {
		return nil, fmt.Errorf("init and seed: %w", err)
	}
	if err := repo.PutBeams(context.Background(), specs); err != nil {
		return nil, fmt.Errorf("init and seed: %w", err)
	}
	log.Info("catalog seeded", "path", cfg.SeedPath, "beams", len(specs))

	return repo, nil
}
