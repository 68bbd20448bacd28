package domain

// One physical beam piece carried by a slot.
type Segment struct {
	Length   Length
	WeightKg float64
}

// Slot is the atomic packable unit: one base-length beam, a pair of
// half-length beams laid end to end, or a lone half-length beam.
// WidthMM and HeightMM always equal the catalog profile of BeamID.
type Slot struct {
	BeamID   string
	WidthMM  float64
	HeightMM float64
	WeightKg float64
	Priority int
	Paired   bool
	Segments []Segment
}
