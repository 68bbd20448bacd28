package services

import (
	"beam-stacking-service/internal/domain"
	"fmt"
	"strings"
)

type halfGroupKey struct {
	priority int
	beamID   string
}

type halfGroup struct {
	spec     domain.BeamSpec
	quantity int
}

// FlattenOrder expands order lines into atomic slots.
//
// Base-length lines yield one slot per unit. Half-length lines are pooled by
// (priority, beam) and consumed two at a time into paired slots carrying the
// full reference weight; an odd unit left over becomes a lone slot at half
// weight. Base slots come first in line order, then half-length groups in
// order of first appearance, so the output is deterministic.
func FlattenOrder(lines []domain.OrderLine, catalog domain.Catalog) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0, len(lines))

	groups := make(map[halfGroupKey]*halfGroup)
	groupOrder := make([]halfGroupKey, 0)

	for i, line := range lines {
		id := strings.TrimSpace(line.BeamID)
		if id == "" {
			return nil, &domain.OrderLineError{Line: i + 1, Reason: "beam id must not be empty"}
		}
		if !line.Length.Valid() {
			return nil, &domain.OrderLineError{
				Line:   i + 1,
				Reason: fmt.Sprintf("length %gm is not a supported nominal length", float64(line.Length)),
			}
		}
		if line.Quantity < 1 {
			return nil, &domain.OrderLineError{
				Line:   i + 1,
				Reason: fmt.Sprintf("quantity must be positive, got %d", line.Quantity),
			}
		}

		spec, ok := catalog.Lookup(id)
		if !ok {
			return nil, &domain.LookupError{Line: i + 1, BeamID: id}
		}

		if line.Length == domain.LengthBase {
			for n := 0; n < line.Quantity; n++ {
				slots = append(slots, newSlot(spec, line.Priority, false,
					domain.Segment{Length: domain.LengthBase, WeightKg: spec.WeightKg},
				))
			}
			continue
		}

		key := halfGroupKey{priority: line.Priority, beamID: id}
		g, ok := groups[key]
		if !ok {
			g = &halfGroup{spec: spec}
			groups[key] = g
			groupOrder = append(groupOrder, key)
		}
		g.quantity += line.Quantity
	}

	for _, key := range groupOrder {
		g := groups[key]
		half := domain.Segment{Length: domain.LengthHalf, WeightKg: g.spec.WeightKg / 2}

		for n := 0; n < g.quantity/2; n++ {
			slots = append(slots, newSlot(g.spec, key.priority, true, half, half))
		}
		if g.quantity%2 == 1 {
			slots = append(slots, newSlot(g.spec, key.priority, false, half))
		}
	}

	return slots, nil
}

func newSlot(spec domain.BeamSpec, priority int, paired bool, segments ...domain.Segment) *domain.Slot {
	var weight float64
	for _, s := range segments {
		weight += s.WeightKg
	}

	return &domain.Slot{
		BeamID:   spec.BeamID,
		WidthMM:  spec.WidthMM,
		HeightMM: spec.HeightMM,
		WeightKg: weight,
		Priority: priority,
		Paired:   paired,
		Segments: segments,
	}
}
