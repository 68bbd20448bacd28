package repositories

import (
	"beam-stacking-service/internal/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLite-backed implementation of the BeamRepository port.
type SqliteBeamRepository struct{ DB *sql.DB }

func NewSqliteBeamRepository(db *sql.DB) *SqliteBeamRepository {
	return &SqliteBeamRepository{DB: db}
}

// Return all beams stored in the database.
func (s *SqliteBeamRepository) ListBeams(ctx context.Context) ([]domain.BeamSpec, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite beam repository: DB is nil")
	}

	query := `
	SELECT
		beam_id,
		gauge,
		width_mm,
		height_mm,
		weight_kg
	FROM beams
	ORDER BY beam_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list beams: query beams table: %w", err)
	}
	defer rows.Close()

	return scanBeams(rows, "list beams")
}

// Return the beams matching ids; unknown ids are skipped.
func (s *SqliteBeamRepository) GetBeams(ctx context.Context, ids []string) ([]domain.BeamSpec, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite beam repository: DB is nil")
	}

	uniq := uniqueIDs(ids)
	if len(uniq) == 0 {
		return []domain.BeamSpec{}, nil
	}

	ph := make([]string, 0, len(uniq))
	args := make([]any, 0, len(uniq))
	for _, id := range uniq {
		ph = append(ph, "?")
		args = append(args, id)
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`
	SELECT
		beam_id,
		gauge,
		width_mm,
		height_mm,
		weight_kg
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

// Upsert catalog entries.
func (s *SqliteBeamRepository) PutBeams(ctx context.Context, specs []domain.BeamSpec) error {
	if s.DB == nil {
		return errors.New("sqlite beam repository: DB is nil")
	}

	return putBeams(ctx, s.DB, `
	INSERT OR REPLACE INTO beams (
		beam_id,
		gauge,
		width_mm,
		height_mm,
		weight_kg
	)
	VALUES (?, ?, ?, ?, ?);
	`, specs)
}

func putBeams(ctx context.Context, db *sql.DB, query string, specs []domain.BeamSpec) error {
	if len(specs) == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("put beams: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("put beams: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range specs {
		if strings.TrimSpace(b.BeamID) == "" {
			return errors.New("put beams: empty beam id")
		}
		if _, err := stmt.ExecContext(ctx, b.BeamID, b.Gauge, b.WidthMM, b.HeightMM, b.WeightKg); err != nil {
			return fmt.Errorf("put beams: insert beam_id=%q: %w", b.BeamID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("put beams: commit tx: %w", err)
	}

	return nil
}

func scanBeams(rows *sql.Rows, op string) ([]domain.BeamSpec, error) {
	beams := make([]domain.BeamSpec, 0, 64)
	for rows.Next() {
		var b domain.BeamSpec
		if err := rows.Scan(&b.BeamID, &b.Gauge, &b.WidthMM, &b.HeightMM, &b.WeightKg); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		beams = append(beams, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: row iteration: %w", op, err)
	}

	return beams, nil
}

func uniqueIDs(ids []string) []string {
	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}

		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}
	return uniq
}
