package dto

import "beam-stacking-service/internal/domain"

// NewPlanResponse maps a calculation result onto its wire shape.
func NewPlanResponse(planID string, res *domain.CalculationResult) PlanResponse {
	out := PlanResponse{
		PlanID:        planID,
		Layers:        make([]LayerResponse, 0, len(res.Layers)),
		TotalWeightKg: res.TotalWeightKg,
		TotalHeightMM: res.TotalHeightMM,
		MaxWidthMM:    res.MaxWidthMM,
		Errors:        nonNil(res.Errors),
		Warnings:      nonNil(res.Warnings),
		Notes:         nonNil(res.Notes),
	}

	for _, l := range res.Layers {
		slots := make([]SlotResponse, 0, len(l.Slots))
		for _, s := range l.Slots {
			segs := make([]SegmentResponse, 0, len(s.Segments))
			for _, seg := range s.Segments {
				segs = append(segs, SegmentResponse{Length: float64(seg.Length), WeightKg: seg.WeightKg})
			}
			slots = append(slots, SlotResponse{
				BeamID:   s.BeamID,
				WidthMM:  s.WidthMM,
				HeightMM: s.HeightMM,
				WeightKg: s.WeightKg,
				Priority: s.Priority,
				Paired:   s.Paired,
				Segments: segs,
			})
		}

		out.Layers = append(out.Layers, LayerResponse{
			Index:          l.Index,
			SlotWidthMM:    l.SlotWidthMM,
			ClearanceMM:    l.ClearanceMM,
			TotalWidthMM:   l.TotalWidthMM(),
			MaxHeightMM:    l.MaxHeightMM,
			MinHeightMM:    l.MinHeightMM,
			HeightSpreadMM: l.HeightSpreadMM(),
			Priority:       l.Priority,
			WeightKg:       l.WeightKg(),
			Oversized:      l.Oversized,
			Slots:          slots,
		})
	}

	return out
}

// OrderLines converts request lines into domain order lines.
func OrderLines(lines []OrderLineRequest) []domain.OrderLine {
	out := make([]domain.OrderLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, domain.OrderLine{
			BeamID:        l.BeamID,
			Length:        domain.Length(l.Length),
			Quantity:      l.Quantity,
			Priority:      l.Priority,
			FromOrderList: l.FromOrderList,
		})
	}
	return out
}

// Apply overlays the fields present in the request onto base.
func (c *StackConfigRequest) Apply(base domain.StackConfig) domain.StackConfig {
	if c == nil {
		return base
	}
	if c.MaxWidth != nil {
		base.MaxWidthMM = *c.MaxWidth
	}
	if c.Gap != nil {
		base.GapMM = *c.Gap
	}
	if c.Dunnage != nil {
		base.DunnageMM = *c.Dunnage
	}
	if c.HeightTolerance != nil {
		base.HeightToleranceMM = *c.HeightTolerance
	}
	return base
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
