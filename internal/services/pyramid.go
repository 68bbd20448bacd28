package services

import (
	"beam-stacking-service/internal/domain"
	"fmt"
)

// StabilityViolation reports a layer that cannot sit on the one beneath it
// even after adding technical clearance within the maximum width.
type StabilityViolation struct {
	Layer        int
	WidthMM      float64
	BelowWidthMM float64
	MaxWidthMM   float64
}

func (v *StabilityViolation) Error() string {
	return fmt.Sprintf(
		"layer %d (%.0f mm) cannot rest on layer %d (%.0f mm) within max width %.0f mm",
		v.Layer, v.WidthMM, v.Layer-1, v.BelowWidthMM, v.MaxWidthMM,
	)
}

// CheckPyramid walks the stack bottom-up and makes sure no layer is wider
// than the layer beneath it. A narrower lower layer receives technical
// clearance up to the width of the layer above, provided that width stays
// within maxWidthMM; clearance is carried further down wherever a lower layer
// would otherwise become narrower than the one it supports. The walk stops at
// the first layer that cannot be supported and returns a *StabilityViolation.
func CheckPyramid(layers []*domain.Layer, maxWidthMM float64) ([]string, error) {
	notes := make([]string, 0)

	for i := 1; i < len(layers); i++ {
		upper := layers[i].TotalWidthMM()
		lower := layers[i-1].TotalWidthMM()
		if upper <= lower+eps {
			continue
		}

		if upper > maxWidthMM+eps {
			return notes, &StabilityViolation{
				Layer:        i,
				WidthMM:      upper,
				BelowWidthMM: lower,
				MaxWidthMM:   maxWidthMM,
			}
		}

		notes = append(notes, widenBelow(layers, i)...)
	}

	return notes, nil
}

// SettlePyramid is the unconditional variant of CheckPyramid used after the
// width-first re-layering: clearance is always added, even past the maximum
// width. Callers are expected to report layers that end up over the limit.
func SettlePyramid(layers []*domain.Layer) []string {
	notes := make([]string, 0)
	for i := 1; i < len(layers); i++ {
		if layers[i].TotalWidthMM() > layers[i-1].TotalWidthMM()+eps {
			notes = append(notes, widenBelow(layers, i)...)
		}
	}
	return notes
}

// widenBelow grows every layer under top that is narrower than it.
func widenBelow(layers []*domain.Layer, top int) []string {
	target := layers[top].TotalWidthMM()
	notes := make([]string, 0, 1)

	for j := top - 1; j >= 0; j-- {
		l := layers[j]
		excess := target - l.TotalWidthMM()
		if excess <= eps {
			break
		}
		l.Widen(target)
		notes = append(notes, fmt.Sprintf(
			"layer %d: technical clearance of %.0f mm added to carry layer %d (%.0f mm)",
			j, excess, top, target,
		))
	}

	return notes
}
