package config

import (
	"beam-stacking-service/internal/domain"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the server configuration assembled from the environment.
type Config struct {
	Port        string
	DBDriver    string
	DBPath      string
	DatabaseURL string
	SeedPath    string
	RedisAddr   string
	RedisTTL    time.Duration
	LogLevel    string
	Stack       domain.StackConfig
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) (float64, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a number: %w", key, v, err)
	}
	return f, nil
}

// Load reads an optional .env file and then the process environment.
// It reports whether a .env file was found.
func Load() (*Config, bool, error) {
	dotenv := godotenv.Load() == nil

	cfg := &Config{
		Port:        Get("PORT", "8080"),
		DBDriver:    Get("DB_DRIVER", "sqlite"),
		DBPath:      Get("DB_PATH", "data/app.db"),
		DatabaseURL: Get("DATABASE_URL", ""),
		SeedPath:    Get("SEED_PATH", "data/seeds/beams.yaml"),
		RedisAddr:   Get("REDIS_ADDR", ""),
		LogLevel:    Get("LOG_LEVEL", "info"),
		Stack:       domain.DefaultStackConfig(),
	}

	ttl, err := time.ParseDuration(Get("REDIS_TTL", "24h"))
	if err != nil {
		return nil, dotenv, fmt.Errorf("config: REDIS_TTL: %w", err)
	}
	cfg.RedisTTL = ttl

	floats := []struct {
		key string
		dst *float64
	}{
		{"MAX_WIDTH_MM", &cfg.Stack.MaxWidthMM},
		{"GAP_MM", &cfg.Stack.GapMM},
		{"DUNNAGE_MM", &cfg.Stack.DunnageMM},
		{"HEIGHT_TOLERANCE_MM", &cfg.Stack.HeightToleranceMM},
	}
	for _, f := range floats {
		v, err := getFloat(f.key, *f.dst)
		if err != nil {
			return nil, dotenv, err
		}
		*f.dst = v
	}

	switch cfg.DBDriver {
	case "sqlite":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, dotenv, fmt.Errorf("config: DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		return nil, dotenv, fmt.Errorf("config: unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if err := cfg.Stack.Validate(); err != nil {
		return nil, dotenv, fmt.Errorf("config: %w", err)
	}

	return cfg, dotenv, nil
}
