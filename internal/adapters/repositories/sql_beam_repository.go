package repositories

import (
	"beam-stacking-service/internal/domain"
	"beam-stacking-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLBeamRepository is a Postgres-backed BeamRepository (pgx stdlib driver).
type SQLBeamRepository struct {
	DB *sql.DB
}

func NewSQLBeamRepository(db *sql.DB) *SQLBeamRepository {
	return &SQLBeamRepository{DB: db}
}

func (s *SQLBeamRepository) ListBeams(ctx context.Context) (_ []domain.BeamSpec, err error) {
	defer obs.Time(ctx, "beams.sql.ListBeams")(&err)

	if s.DB == nil {
		return nil, errors.New("sql beam repository: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT beam_id, gauge, width_mm, height_mm, weight_kg
	FROM beams
	ORDER BY beam_id;
	`)
	if err != nil {
		return nil, fmt.Errorf("list beams: query beams table: %w", err)
	}
	defer rows.Close()

	return scanBeams(rows, "list beams")
}

func (s *SQLBeamRepository) GetBeams(ctx context.Context, ids []string) (_ []domain.BeamSpec, err error) {
	defer obs.Time(ctx, "beams.sql.GetBeams")(&err)

	if s.DB == nil {
		return nil, errors.New("sql beam repository: db is nil")
	}

	uniq := uniqueIDs(ids)
	if len(uniq) == 0 {
		return []domain.BeamSpec{}, nil
	}

	ph := make([]string, 0, len(uniq))
	args := make([]any, 0, len(uniq))
	for i, id := range uniq {
		ph = append(ph, fmt.Sprintf("$%d", i+1))
		args = append(args, id)
	}

	// Numbered placeholders are read by both Postgres and SQLite.
	q := fmt.Sprintf(`
	SELECT beam_id, gauge, width_mm, height_mm, weight_kg
	FROM beams
	WHERE beam_id IN (%s)
	ORDER BY beam_id;
	`, strings.Join(ph, ","))

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("get beams: query beams table: %w", err)
	}
	defer rows.Close()

	return scanBeams(rows, "get beams")
}

// Upsert catalog entries. ON CONFLICT ... EXCLUDED is shared with SQLite 3.24+.
func (s *SQLBeamRepository) PutBeams(ctx context.Context, specs []domain.BeamSpec) error {
	if s.DB == nil {
		return errors.New("sql beam repository: db is nil")
	}

	return putBeams(ctx, s.DB, `
	INSERT INTO beams (beam_id, gauge, width_mm, height_mm, weight_kg)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (beam_id) DO UPDATE
	SET gauge = EXCLUDED.gauge,
		width_mm = EXCLUDED.width_mm,
		height_mm = EXCLUDED.height_mm,
		weight_kg = EXCLUDED.weight_kg;
	`, specs)
}
