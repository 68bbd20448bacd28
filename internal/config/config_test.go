package config

import (
	"beam-stacking-service/internal/domain"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"PORT", "DB_DRIVER", "MAX_WIDTH_MM", "GAP_MM", "DUNNAGE_MM", "HEIGHT_TOLERANCE_MM", "REDIS_TTL"} {
		t.Setenv(k, "")
	}

	cfg, dotenv, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dotenv {
		t.Errorf("dotenv = true, want false without a .env file")
	}
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.Stack != domain.DefaultStackConfig() {
		t.Errorf("stack = %+v, want defaults", cfg.Stack)
	}
	if cfg.RedisTTL != 24*time.Hour {
		t.Errorf("redis ttl = %v, want 24h", cfg.RedisTTL)
	}
}

func TestLoadStackFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MAX_WIDTH_MM", "2400")
	t.Setenv("GAP_MM", "15")

	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Stack.MaxWidthMM != 2400 || cfg.Stack.GapMM != 15 {
		t.Fatalf("stack = %+v, want max 2400 gap 15", cfg.Stack)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"MAX_WIDTH_MM", "wide"},
		{"MAX_WIDTH_MM", "-3"},
		{"DB_DRIVER", "oracle"},
		{"REDIS_TTL", "forever"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)

			if _, _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestLoadStackFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stack.toml")
	if err := os.WriteFile(path, []byte("max_width = 2400.0\ngap = 10.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadStackFile(path, domain.DefaultStackConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxWidthMM != 2400 || cfg.GapMM != 10 {
		t.Errorf("cfg = %+v, want max 2400 gap 10", cfg)
	}
	if cfg.DunnageMM != domain.DefaultDunnageMM {
		t.Errorf("dunnage = %v, want default %v", cfg.DunnageMM, domain.DefaultDunnageMM)
	}
}

func TestLoadStackFileUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stack.toml")
	if err := os.WriteFile(path, []byte("max_widht = 2400.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadStackFile(path, domain.DefaultStackConfig()); err == nil {
		t.Fatal("expected error for misspelled key")
	}
}
