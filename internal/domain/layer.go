package domain

// Layer is one horizontal stacking level. Index 0 is the base.
//
// SlotWidthMM is the raw sum of slot widths without gaps. ClearanceMM is a
// virtual allowance added by pyramid validation so the layer can carry a
// wider layer above it; it never corresponds to a slot.
type Layer struct {
	Index       int
	Slots       []*Slot
	SlotWidthMM float64
	ClearanceMM float64
	MaxHeightMM float64
	MinHeightMM float64
	Priority    int
	Oversized   bool
}

// NewLayer finalizes a filled layer: widths, height range and the
// representative (minimum) priority.
func NewLayer(index int, slots []*Slot) *Layer {
	l := &Layer{Index: index, Slots: slots}
	for i, s := range slots {
		l.SlotWidthMM += s.WidthMM
		if i == 0 || s.HeightMM > l.MaxHeightMM {
			l.MaxHeightMM = s.HeightMM
		}
		if i == 0 || s.HeightMM < l.MinHeightMM {
			l.MinHeightMM = s.HeightMM
		}
		if i == 0 || s.Priority < l.Priority {
			l.Priority = s.Priority
		}
	}
	return l
}

// TotalWidthMM is the recorded footprint used by the pyramid invariant.
func (l *Layer) TotalWidthMM() float64 { return l.SlotWidthMM + l.ClearanceMM }

// HeightSpreadMM is the difference between the tallest and shortest slot.
func (l *Layer) HeightSpreadMM() float64 { return l.MaxHeightMM - l.MinHeightMM }

// WeightKg sums the weight of every slot in the layer.
func (l *Layer) WeightKg() float64 {
	var w float64
	for _, s := range l.Slots {
		w += s.WeightKg
	}
	return w
}

// Widen raises the recorded width to at least widthMM by growing the clearance.
func (l *Layer) Widen(widthMM float64) {
	if d := widthMM - l.TotalWidthMM(); d > 0 {
		l.ClearanceMM += d
	}
}
