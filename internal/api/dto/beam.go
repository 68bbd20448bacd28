package dto

type BeamResponse struct {
	BeamID   string  `json:"beam_id"`
	Gauge    string  `json:"gauge"`
	WidthMM  float64 `json:"width_mm"`
	HeightMM float64 `json:"height_mm"`
	WeightKg float64 `json:"weight_kg"`
}

type ListBeamsResponse struct {
	Beams []BeamResponse `json:"beams"`
}
