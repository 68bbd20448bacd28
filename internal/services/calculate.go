package services

import (
	"beam-stacking-service/internal/domain"
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// Calculate computes a layer-by-layer loading plan for an order.
//
// The first attempt honours the requested unload order: slots with the
// highest priority value go to the base. If that stack cannot be made stable
// with technical clearance, the whole pool is re-layered widest first and the
// resulting stack is settled unconditionally. The heuristic is greedy and
// deterministic; it does not search for an optimal packing.
//
// Calculate is a pure function of its inputs and safe for concurrent use.
func Calculate(
	lines []domain.OrderLine,
	cfg domain.StackConfig,
	catalog domain.Catalog,
) (*domain.CalculationResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("calculate: %w", err)
	}

	if len(lines) == 0 {
		return &domain.CalculationResult{
			Layers:   []*domain.Layer{},
			Errors:   []string{},
			Warnings: []string{},
			Notes:    []string{},
		}, nil
	}

	pool, err := FlattenOrder(lines, catalog)
	if err != nil {
		return nil, fmt.Errorf("calculate: flatten order: %w", err)
	}

	warnings := make([]string, 0)
	notes := []string{fmt.Sprintf("order flattened into %d slots", len(pool))}

	byPriority := slices.Clone(pool)
	slices.SortStableFunc(byPriority, func(a, b *domain.Slot) int {
		return cmp.Compare(b.Priority, a.Priority)
	})

	layers := BuildLayers(byPriority, cfg)
	checkNotes, err := CheckPyramid(layers, cfg.MaxWidthMM)

	var violation *StabilityViolation
	switch {
	case err == nil:
		notes = append(notes, fmt.Sprintf("priority order kept: %d layers", len(layers)))
		notes = append(notes, checkNotes...)

	case errors.As(err, &violation):
		warnings = append(warnings, fmt.Sprintf(
			"requested load order overridden for stability: %v", violation,
		))

		byWidth := slices.Clone(pool)
		slices.SortStableFunc(byWidth, func(a, b *domain.Slot) int {
			if c := cmp.Compare(b.WidthMM, a.WidthMM); c != 0 {
				return c
			}
			return cmp.Compare(b.Priority, a.Priority)
		})

		layers = BuildLayers(byWidth, cfg)
		notes = append(notes, fmt.Sprintf("width-first fallback: %d layers", len(layers)))
		notes = append(notes, SettlePyramid(layers)...)

	default:
		return nil, fmt.Errorf("calculate: check pyramid: %w", err)
	}

	warnings = append(warnings, overshootWarnings(layers, cfg.MaxWidthMM)...)

	return consolidate(layers, cfg, warnings, notes), nil
}

// overshootWarnings reports forced single-slot layers and layers whose
// clearance pushed them past the maximum width.
func overshootWarnings(layers []*domain.Layer, maxWidthMM float64) []string {
	out := make([]string, 0)
	for _, l := range layers {
		if l.Oversized {
			s := l.Slots[0]
			out = append(out, fmt.Sprintf(
				"layer %d: beam %s is %.0f mm wide, over the %.0f mm limit; loaded alone",
				l.Index, s.BeamID, s.WidthMM, maxWidthMM,
			))
			continue
		}
		if l.TotalWidthMM() > maxWidthMM+eps {
			out = append(out, fmt.Sprintf(
				"layer %d: recorded width %.0f mm including clearance exceeds the %.0f mm limit",
				l.Index, l.TotalWidthMM(), maxWidthMM,
			))
		}
	}
	return out
}

func consolidate(
	layers []*domain.Layer,
	cfg domain.StackConfig,
	warnings []string,
	notes []string,
) *domain.CalculationResult {
	res := &domain.CalculationResult{
		Layers:   layers,
		Errors:   []string{},
		Warnings: warnings,
		Notes:    notes,
	}

	for _, l := range layers {
		res.TotalWeightKg += l.WeightKg()
		res.TotalHeightMM += l.MaxHeightMM + cfg.DunnageMM
		if w := l.TotalWidthMM(); w > res.MaxWidthMM {
			res.MaxWidthMM = w
		}
	}

	return res
}
