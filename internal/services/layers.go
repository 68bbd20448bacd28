package services

import (
	"beam-stacking-service/internal/domain"
	"math"
)

// Absorbs float noise when comparing accumulated millimetre sums.
const eps = 1e-9

// BuildLayers partitions the pool into layers with a greedy first-fit scan.
//
// Each pass walks the remaining pool in order and accepts every slot that fits
// both the width budget (gaps counted between adjacent slots) and the height
// tolerance of the layer under construction. Accepted slots leave the pool;
// rejected ones wait for a later layer. A slot too wide to fit even alone is
// forced into a layer of its own so the loop always makes progress; such a
// layer is marked Oversized. The input slice is not modified.
func BuildLayers(pool []*domain.Slot, cfg domain.StackConfig) []*domain.Layer {
	remaining := make([]*domain.Slot, len(pool))
	copy(remaining, pool)

	layers := make([]*domain.Layer, 0)

	for len(remaining) > 0 {
		accepted := make([]*domain.Slot, 0)
		var usedWidth float64
		maxH, minH := 0.0, 0.0

		for i := 0; i < len(remaining); {
			s := remaining[i]

			contribution := s.WidthMM
			if len(accepted) > 0 {
				contribution += cfg.GapMM
			}

			fitsWidth := usedWidth+contribution <= cfg.MaxWidthMM+eps
			fitsHeight := true
			if len(accepted) > 0 {
				spread := math.Max(maxH, s.HeightMM) - math.Min(minH, s.HeightMM)
				fitsHeight = spread <= cfg.HeightToleranceMM+eps
			}

			if !fitsWidth || !fitsHeight {
				i++
				continue
			}

			if len(accepted) == 0 {
				maxH, minH = s.HeightMM, s.HeightMM
			} else {
				maxH = math.Max(maxH, s.HeightMM)
				minH = math.Min(minH, s.HeightMM)
			}
			accepted = append(accepted, s)
			usedWidth += contribution
			// The successor shifts into position i and is scanned next.
			remaining = append(remaining[:i], remaining[i+1:]...)
		}

		if len(accepted) == 0 {
			layer := domain.NewLayer(len(layers), []*domain.Slot{remaining[0]})
			layer.Oversized = true
			layers = append(layers, layer)
			remaining = remaining[1:]
			continue
		}

		layers = append(layers, domain.NewLayer(len(layers), accepted))
	}

	return layers
}
