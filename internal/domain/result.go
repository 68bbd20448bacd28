package domain

// Represents the outcome of one stacking calculation.
// Errors are fatal conditions, Warnings are safety-relevant automatic
// decisions and Notes trace the engineering decisions that were taken.
// It is immutable once returned.
type CalculationResult struct {
	Layers        []*Layer
	TotalWeightKg float64
	TotalHeightMM float64
	MaxWidthMM    float64
	Errors        []string
	Warnings      []string
	Notes         []string
}

// SlotCount returns the number of slots across all layers.
func (r *CalculationResult) SlotCount() int {
	n := 0
	for _, l := range r.Layers {
		n += len(l.Slots)
	}
	return n
}
