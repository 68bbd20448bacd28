package repositories

import (
	"beam-stacking-service/internal/domain"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitSchema(db))
	return db
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSqliteBeamRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewSqliteBeamRepository(db)
	ctx := context.Background()

	err := repo.PutBeams(ctx, []domain.BeamSpec{
		{BeamID: "IPE220", Gauge: "220", WidthMM: 110, HeightMM: 220, WeightKg: 314},
		{BeamID: "IPE200", Gauge: "200", WidthMM: 100, HeightMM: 200, WeightKg: 269},
	})
	require.NoError(t, err)

	all, err := repo.ListBeams(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "IPE200", all[0].BeamID)

	got, err := repo.GetBeams(ctx, []string{"IPE220", "MISSING", "IPE220", ""})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.BeamSpec{BeamID: "IPE220", Gauge: "220", WidthMM: 110, HeightMM: 220, WeightKg: 314}, got[0])
}

func TestSqliteBeamRepositoryUpsert(t *testing.T) {
	db := openTestDB(t)
	repo := NewSqliteBeamRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.PutBeams(ctx, []domain.BeamSpec{{BeamID: "HEA200", WidthMM: 200, HeightMM: 190, WeightKg: 500}}))
	require.NoError(t, repo.PutBeams(ctx, []domain.BeamSpec{{BeamID: "HEA200", WidthMM: 200, HeightMM: 190, WeightKg: 508}}))

	got, err := repo.GetBeams(ctx, []string{"HEA200"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 508.0, got[0].WeightKg)
}

// The Postgres repository's statements are portable, so they run against
// in-memory SQLite here. Driver type coercion is only covered against Postgres.
func TestSQLBeamRepositoryStatements(t *testing.T) {
	db := openTestDB(t)
	repo := NewSQLBeamRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.PutBeams(ctx, []domain.BeamSpec{
		{BeamID: "HEB200", Gauge: "200", WidthMM: 200, HeightMM: 200, WeightKg: 613},
		{BeamID: "IPE200", Gauge: "200", WidthMM: 100, HeightMM: 200, WeightKg: 269},
		{BeamID: "HEA200", Gauge: "200", WidthMM: 200, HeightMM: 190, WeightKg: 500},
	}))
	require.NoError(t, repo.PutBeams(ctx, []domain.BeamSpec{
		{BeamID: "HEA200", Gauge: "200A", WidthMM: 200, HeightMM: 190, WeightKg: 508},
	}))

	all, err := repo.ListBeams(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	got, err := repo.GetBeams(ctx, []string{"IPE200", "HEA200", "MISSING", "IPE200"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.BeamSpec{BeamID: "HEA200", Gauge: "200A", WidthMM: 200, HeightMM: 190, WeightKg: 508}, got[0])
	assert.Equal(t, "IPE200", got[1].BeamID)

	none, err := repo.GetBeams(ctx, []string{" ", ""})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSqliteBeamRepositoryNilDB(t *testing.T) {
	repo := NewSqliteBeamRepository(nil)
	_, err := repo.ListBeams(context.Background())
	assert.Error(t, err)
}

func TestLoadBeamSeedYAMLAndJSON(t *testing.T) {
	yamlPath := writeFile(t, "beams.yaml", `
- beam_id: IPE200
  gauge: "200"
  width_mm: 100
  height_mm: 200
  weight_kg: 269
`)
	jsonPath := writeFile(t, "beams.json", `[{"beam_id":" IPE200 ","gauge":"200","width_mm":100,"height_mm":200,"weight_kg":269}]`)

	fromYAML, err := LoadBeamSeed(yamlPath)
	require.NoError(t, err)
	fromJSON, err := LoadBeamSeed(jsonPath)
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromJSON)
	assert.Equal(t, "IPE200", fromJSON[0].BeamID)
}

func TestLoadBeamSeedRejectsBadEntries(t *testing.T) {
	tests := map[string]string{
		"empty id":     `[{"beam_id":"","width_mm":1,"height_mm":1,"weight_kg":1}]`,
		"zero width":   `[{"beam_id":"A","width_mm":0,"height_mm":1,"weight_kg":1}]`,
		"invalid json": `{`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadBeamSeed(writeFile(t, "beams.json", content))
			assert.Error(t, err)
		})
	}

	_, err := LoadBeamSeed(writeFile(t, "beams.csv", "a,b"))
	assert.Error(t, err)
}

func TestMemoryBeamRepository(t *testing.T) {
	repo := NewMemoryBeamRepository([]domain.BeamSpec{
		{BeamID: "B", WidthMM: 1, HeightMM: 1, WeightKg: 1},
		{BeamID: "A", WidthMM: 1, HeightMM: 1, WeightKg: 1},
	})

	all, err := repo.ListBeams(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "A", all[0].BeamID)

	got, err := repo.GetBeams(context.Background(), []string{"B", "C"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].BeamID)
}
