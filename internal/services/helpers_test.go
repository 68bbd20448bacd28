package services

import "beam-stacking-service/internal/domain"

func testCatalog() domain.Catalog {
	return domain.NewCatalog([]domain.BeamSpec{
		{BeamID: "IPE200", Gauge: "200", WidthMM: 100, HeightMM: 200, WeightKg: 269},
		{BeamID: "IPE220", Gauge: "220", WidthMM: 110, HeightMM: 220, WeightKg: 314},
		{BeamID: "HEA200", Gauge: "200", WidthMM: 200, HeightMM: 190, WeightKg: 508},
		{BeamID: "HEB200", Gauge: "200", WidthMM: 200, HeightMM: 200, WeightKg: 736},
		{BeamID: "NARROW", Gauge: "n", WidthMM: 10, HeightMM: 100, WeightKg: 50},
		{BeamID: "WIDE", Gauge: "w", WidthMM: 30, HeightMM: 100, WeightKg: 80},
		{BeamID: "TALL", Gauge: "t", WidthMM: 30, HeightMM: 200, WeightKg: 60},
		{BeamID: "LOW", Gauge: "l", WidthMM: 40, HeightMM: 100, WeightKg: 40},
	})
}

func slotsOf(widths, heights []float64) []*domain.Slot {
	out := make([]*domain.Slot, 0, len(widths))
	for i, w := range widths {
		h := 100.0
		if heights != nil {
			h = heights[i]
		}
		out = append(out, &domain.Slot{BeamID: "X", WidthMM: w, HeightMM: h, WeightKg: 1})
	}
	return out
}

func stackConfig(maxWidth, gap float64) domain.StackConfig {
	return domain.StackConfig{
		MaxWidthMM:        maxWidth,
		GapMM:             gap,
		DunnageMM:         50,
		HeightToleranceMM: 10,
	}
}
