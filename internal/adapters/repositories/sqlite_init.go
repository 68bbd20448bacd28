package repositories

import (
	"beam-stacking-service/internal/domain"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Initialize the catalog schema. The DDL is valid for both SQLite and Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createBeamsQuery := `
	CREATE TABLE IF NOT EXISTS beams (
		beam_id TEXT PRIMARY KEY,
		gauge TEXT NOT NULL DEFAULT '',
		width_mm DOUBLE PRECISION NOT NULL,
		height_mm DOUBLE PRECISION NOT NULL,
		weight_kg DOUBLE PRECISION NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_beams_gauge
	ON beams(gauge);
	`

	statements := []string{
		createBeamsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type BeamSeed struct {
	BeamID   string  `json:"beam_id" yaml:"beam_id"`
	Gauge    string  `json:"gauge" yaml:"gauge"`
	WidthMM  float64 `json:"width_mm" yaml:"width_mm"`
	HeightMM float64 `json:"height_mm" yaml:"height_mm"`
	WeightKg float64 `json:"weight_kg" yaml:"weight_kg"`
}

// Read and validate catalog entries from a JSON or YAML file.
// The format is chosen by extension (.json, .yaml, .yml).
func LoadBeamSeed(path string) ([]domain.BeamSpec, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load beam seed: read %q: %w", path, err)
	}

	var data []BeamSeed
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(bytes, &data); err != nil {
			return nil, fmt.Errorf("load beam seed: parse json: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(bytes, &data); err != nil {
			return nil, fmt.Errorf("load beam seed: parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("load beam seed: unsupported file extension %q", ext)
	}

	specs := make([]domain.BeamSpec, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.BeamID)
		if id == "" {
			return nil, fmt.Errorf("load beam seed: item at index %d: beam_id cannot be empty", i+1)
		}

		if item.WidthMM <= 0 || item.HeightMM <= 0 || item.WeightKg <= 0 {
			return nil, fmt.Errorf(
				"load beam seed: beam %q: width, height and weight must be positive (got %g, %g, %g)",
				id, item.WidthMM, item.HeightMM, item.WeightKg,
			)
		}

		specs = append(specs, domain.BeamSpec{
			BeamID:   id,
			Gauge:    strings.TrimSpace(item.Gauge),
			WidthMM:  item.WidthMM,
			HeightMM: item.HeightMM,
			WeightKg: item.WeightKg,
		})
	}

	return specs, nil
}
