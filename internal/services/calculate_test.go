package services

import (
	"beam-stacking-service/internal/domain"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateEmptyOrder(t *testing.T) {
	res, err := Calculate(nil, stackConfig(100, 0), testCatalog())
	require.NoError(t, err)

	assert.Empty(t, res.Layers)
	assert.Zero(t, res.TotalWeightKg)
	assert.Zero(t, res.TotalHeightMM)
	assert.Zero(t, res.MaxWidthMM)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.Notes)
}

func TestCalculateSplitsByMaxWidth(t *testing.T) {
	lines := []domain.OrderLine{
		{BeamID: "NARROW", Length: domain.LengthBase, Quantity: 3, Priority: 1},
	}

	res, err := Calculate(lines, stackConfig(25, 0), testCatalog())
	require.NoError(t, err)

	require.Len(t, res.Layers, 2)
	assert.Len(t, res.Layers[0].Slots, 2)
	assert.Len(t, res.Layers[1].Slots, 1)
	assert.Equal(t, 150.0, res.TotalWeightKg)
	assert.Equal(t, 2*(100.0+50.0), res.TotalHeightMM)
	assert.Equal(t, 20.0, res.MaxWidthMM)
	assert.Empty(t, res.Warnings)
}

func TestCalculatePutsHighPriorityValuesAtBase(t *testing.T) {
	lines := []domain.OrderLine{
		{BeamID: "IPE200", Length: domain.LengthBase, Quantity: 2, Priority: 1},
		{BeamID: "IPE200", Length: domain.LengthBase, Quantity: 2, Priority: 3},
	}

	res, err := Calculate(lines, stackConfig(200, 0), testCatalog())
	require.NoError(t, err)

	require.Len(t, res.Layers, 2)
	assert.Equal(t, 3, res.Layers[0].Priority)
	assert.Equal(t, 1, res.Layers[1].Priority)
}

func TestCalculateAddsClearanceWithoutReordering(t *testing.T) {
	lines := []domain.OrderLine{
		{BeamID: "TALL", Length: domain.LengthBase, Quantity: 1, Priority: 9},
		{BeamID: "LOW", Length: domain.LengthBase, Quantity: 2, Priority: 1},
	}

	res, err := Calculate(lines, stackConfig(100, 0), testCatalog())
	require.NoError(t, err)

	require.Len(t, res.Layers, 2)
	assert.Equal(t, "TALL", res.Layers[0].Slots[0].BeamID)
	assert.Equal(t, 30.0, res.Layers[0].SlotWidthMM)
	assert.Equal(t, 50.0, res.Layers[0].ClearanceMM)
	assert.Equal(t, 80.0, res.MaxWidthMM)
	assert.Empty(t, res.Warnings)
	assert.Contains(t, res.Notes, "layer 0: technical clearance of 50 mm added to carry layer 1 (80 mm)")
}

func TestCalculateFallsBackToWidthOrder(t *testing.T) {
	lines := []domain.OrderLine{
		{BeamID: "NARROW", Length: domain.LengthBase, Quantity: 1, Priority: 5},
		{BeamID: "WIDE", Length: domain.LengthBase, Quantity: 1, Priority: 1},
	}

	res, err := Calculate(lines, stackConfig(25, 0), testCatalog())
	require.NoError(t, err)

	require.Len(t, res.Layers, 2)
	assert.Equal(t, "WIDE", res.Layers[0].Slots[0].BeamID)
	assert.Equal(t, "NARROW", res.Layers[1].Slots[0].BeamID)
	assert.True(t, res.Layers[0].Oversized)
	require.Len(t, res.Warnings, 2)
	assert.Contains(t, res.Warnings[0], "load order overridden")
	assert.Contains(t, res.Warnings[1], "loaded alone")
	assert.Equal(t, 30.0, res.MaxWidthMM)
	assertPyramid(t, res.Layers)
}

func TestCalculateRejectsInvalidConfiguration(t *testing.T) {
	lines := []domain.OrderLine{{BeamID: "IPE200", Length: domain.LengthBase, Quantity: 1}}

	for _, cfg := range []domain.StackConfig{
		{MaxWidthMM: 0, HeightToleranceMM: 10},
		{MaxWidthMM: 100, GapMM: -1, HeightToleranceMM: 10},
		{MaxWidthMM: 100, DunnageMM: -5},
		{MaxWidthMM: 100, HeightToleranceMM: -1},
	} {
		_, err := Calculate(lines, cfg, testCatalog())
		assert.ErrorIs(t, err, domain.ErrInvalidConfiguration, "config %+v", cfg)
	}
}

func TestCalculateAbortsOnUnknownBeam(t *testing.T) {
	lines := []domain.OrderLine{{BeamID: "MISSING", Length: domain.LengthBase, Quantity: 1}}

	res, err := Calculate(lines, stackConfig(100, 0), testCatalog())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrBeamNotFound)
}

func TestCalculateIsDeterministic(t *testing.T) {
	lines := randomOrder(rand.New(rand.NewPCG(7, 11)), 12)
	cfg := stackConfig(500, 5)

	first, err := Calculate(lines, cfg, testCatalog())
	require.NoError(t, err)
	second, err := Calculate(lines, cfg, testCatalog())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculateInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	cat := testCatalog()

	for run := 0; run < 200; run++ {
		lines := randomOrder(rng, 1+rng.IntN(10))
		cfg := stackConfig(float64(100+rng.IntN(500)), float64(rng.IntN(3)*5))

		res, err := Calculate(lines, cfg, cat)
		require.NoError(t, err)

		wantSlots, wantWeight := expectedSlots(lines, cat)
		assert.Equal(t, wantSlots, res.SlotCount(), "run %d", run)
		assert.InDelta(t, wantWeight, res.TotalWeightKg, 1e-6, "run %d", run)

		for _, l := range res.Layers {
			if l.Oversized {
				assert.Len(t, l.Slots, 1)
				continue
			}
			used := l.SlotWidthMM + cfg.GapMM*float64(len(l.Slots)-1)
			assert.LessOrEqual(t, used, cfg.MaxWidthMM+1e-9, "run %d layer %d", run, l.Index)
			assert.LessOrEqual(t, l.HeightSpreadMM(), cfg.HeightToleranceMM, "run %d layer %d", run, l.Index)
		}

		assertPyramid(t, res.Layers)
	}
}

func assertPyramid(t *testing.T, layers []*domain.Layer) {
	t.Helper()
	for i := 1; i < len(layers); i++ {
		assert.LessOrEqual(t, layers[i].TotalWidthMM(), layers[i-1].TotalWidthMM()+1e-9,
			"layer %d wider than layer %d", i, i-1)
	}
}

func randomOrder(rng *rand.Rand, n int) []domain.OrderLine {
	ids := []string{"IPE200", "IPE220", "HEA200", "HEB200", "NARROW", "WIDE", "TALL", "LOW"}
	lines := make([]domain.OrderLine, 0, n)
	for i := 0; i < n; i++ {
		length := domain.LengthBase
		if rng.IntN(2) == 0 {
			length = domain.LengthHalf
		}
		lines = append(lines, domain.OrderLine{
			BeamID:   ids[rng.IntN(len(ids))],
			Length:   length,
			Quantity: 1 + rng.IntN(6),
			Priority: rng.IntN(4),
		})
	}
	return lines
}

// expectedSlots counts slots and weight the way pairing should produce them.
func expectedSlots(lines []domain.OrderLine, cat domain.Catalog) (int, float64) {
	type key struct {
		id       string
		priority int
	}
	halves := map[key]int{}
	slots := 0
	var weight float64

	for _, l := range lines {
		if l.Length == domain.LengthBase {
			slots += l.Quantity
			weight += float64(l.Quantity) * cat[l.BeamID].WeightKg
			continue
		}
		halves[key{l.BeamID, l.Priority}] += l.Quantity
		weight += float64(l.Quantity) * cat[l.BeamID].WeightKg / 2
	}
	for _, q := range halves {
		slots += q/2 + q%2
	}
	return slots, weight
}
