package dto

type StackConfigRequest struct {
	MaxWidth        *float64 `json:"max_width"`
	Gap             *float64 `json:"gap"`
	Dunnage         *float64 `json:"dunnage"`
	HeightTolerance *float64 `json:"height_tolerance"`
}

type OrderLineRequest struct {
	BeamID        string  `json:"beam_id"`
	Length        float64 `json:"length"`
	Quantity      int     `json:"quantity"`
	Priority      int     `json:"priority"`
	FromOrderList bool    `json:"from_order_list"`
}

type PlanRequest struct {
	Config *StackConfigRequest `json:"config"`
	Lines  []OrderLineRequest  `json:"lines"`
}

type SegmentResponse struct {
	Length   float64 `json:"length"`
	WeightKg float64 `json:"weight_kg"`
}

type SlotResponse struct {
	BeamID   string            `json:"beam_id"`
	WidthMM  float64           `json:"width_mm"`
	HeightMM float64           `json:"height_mm"`
	WeightKg float64           `json:"weight_kg"`
	Priority int               `json:"priority"`
	Paired   bool              `json:"paired"`
	Segments []SegmentResponse `json:"segments"`
}

type LayerResponse struct {
	Index          int            `json:"index"`
	SlotWidthMM    float64        `json:"slot_width_mm"`
	ClearanceMM    float64        `json:"clearance_mm"`
	TotalWidthMM   float64        `json:"total_width_mm"`
	MaxHeightMM    float64        `json:"max_height_mm"`
	MinHeightMM    float64        `json:"min_height_mm"`
	HeightSpreadMM float64        `json:"height_spread_mm"`
	Priority       int            `json:"priority"`
	WeightKg       float64        `json:"weight_kg"`
	Oversized      bool           `json:"oversized"`
	Slots          []SlotResponse `json:"slots"`
}

type PlanResponse struct {
	PlanID        string          `json:"plan_id"`
	Layers        []LayerResponse `json:"layers"`
	TotalWeightKg float64         `json:"total_weight_kg"`
	TotalHeightMM float64         `json:"total_height_mm"`
	MaxWidthMM    float64         `json:"max_width_mm"`
	Errors        []string        `json:"errors"`
	Warnings      []string        `json:"warnings"`
	Notes         []string        `json:"notes"`
}
