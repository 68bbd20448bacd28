package domain

const (
	DefaultMaxWidthMM        = 2450
	DefaultDunnageMM         = 50
	DefaultHeightToleranceMM = 10
)

// StackConfig holds the geometric limits of one calculation.
type StackConfig struct {
	MaxWidthMM        float64
	GapMM             float64
	DunnageMM         float64
	HeightToleranceMM float64
}

func DefaultStackConfig() StackConfig {
	return StackConfig{
		MaxWidthMM:        DefaultMaxWidthMM,
		DunnageMM:         DefaultDunnageMM,
		HeightToleranceMM: DefaultHeightToleranceMM,
	}
}
