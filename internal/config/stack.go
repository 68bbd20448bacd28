package config

import (
	"beam-stacking-service/internal/domain"
	"fmt"

	"github.com/BurntSushi/toml"
)

type stackFile struct {
	MaxWidth        *float64 `toml:"max_width"`
	Gap             *float64 `toml:"gap"`
	Dunnage         *float64 `toml:"dunnage"`
	HeightTolerance *float64 `toml:"height_tolerance"`
}

// LoadStackFile overlays the values found in a TOML file onto base.
// Keys absent from the file keep their base value.
func LoadStackFile(path string, base domain.StackConfig) (domain.StackConfig, error) {
	var f stackFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return base, fmt.Errorf("load stack config %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return base, fmt.Errorf("load stack config %q: unknown key %q", path, undecoded[0].String())
	}

	cfg := base
	if f.MaxWidth != nil {
		cfg.MaxWidthMM = *f.MaxWidth
	}
	if f.Gap != nil {
		cfg.GapMM = *f.Gap
	}
	if f.Dunnage != nil {
		cfg.DunnageMM = *f.Dunnage
	}
	if f.HeightTolerance != nil {
		cfg.HeightToleranceMM = *f.HeightTolerance
	}

	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("load stack config %q: %w", path, err)
	}

	return cfg, nil
}
