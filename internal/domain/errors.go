package domain

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrBeamNotFound         = errors.New("beam not found in catalog")
	ErrInvalidOrderLine     = errors.New("invalid order line")
	ErrInvalidConfiguration = errors.New("invalid stack configuration")
)

// LookupError reports an order line whose beam is absent from the catalog.
type LookupError struct {
	Line   int
	BeamID string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("order line %d: beam %q: %v", e.Line, e.BeamID, ErrBeamNotFound)
}

func (e *LookupError) Unwrap() error { return ErrBeamNotFound }

// OrderLineError reports an order line that cannot describe physical beams.
type OrderLineError struct {
	Line   int
	Reason string
}

func (e *OrderLineError) Error() string {
	return fmt.Sprintf("order line %d: %s", e.Line, e.Reason)
}

func (e *OrderLineError) Unwrap() error { return ErrInvalidOrderLine }

// Validate rejects limits that cannot produce a meaningful geometry.
func (c StackConfig) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"max width", c.MaxWidthMM},
		{"gap", c.GapMM},
		{"dunnage", c.DunnageMM},
		{"height tolerance", c.HeightToleranceMM},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %g", ErrInvalidConfiguration, f.name, f.v)
		}
	}

	switch {
	case c.MaxWidthMM <= 0:
		return fmt.Errorf("%w: max width must be positive, got %g", ErrInvalidConfiguration, c.MaxWidthMM)
	case c.GapMM < 0:
		return fmt.Errorf("%w: gap must not be negative, got %g", ErrInvalidConfiguration, c.GapMM)
	case c.DunnageMM < 0:
		return fmt.Errorf("%w: dunnage must not be negative, got %g", ErrInvalidConfiguration, c.DunnageMM)
	case c.HeightToleranceMM < 0:
		return fmt.Errorf("%w: height tolerance must not be negative, got %g", ErrInvalidConfiguration, c.HeightToleranceMM)
	}
	return nil
}
