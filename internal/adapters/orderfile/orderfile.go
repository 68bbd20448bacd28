package orderfile

import (
	"beam-stacking-service/internal/domain"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type lineRecord struct {
	BeamID        string  `json:"beam_id" yaml:"beam_id"`
	Length        float64 `json:"length" yaml:"length"`
	Quantity      int     `json:"quantity" yaml:"quantity"`
	Priority      int     `json:"priority" yaml:"priority"`
	FromOrderList bool    `json:"from_order_list" yaml:"from_order_list"`
}

// Load reads order lines from a JSON or YAML file, chosen by extension.
// Field validation is left to the calculation.
func Load(path string) ([]domain.OrderLine, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load order file: read %q: %w", path, err)
	}

	var records []lineRecord
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(bytes, &records); err != nil {
			return nil, fmt.Errorf("load order file: parse json: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(bytes, &records); err != nil {
			return nil, fmt.Errorf("load order file: parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("load order file: unsupported file extension %q", ext)
	}

	lines := make([]domain.OrderLine, 0, len(records))
	for _, r := range records {
		lines = append(lines, domain.OrderLine{
			BeamID:        r.BeamID,
			Length:        domain.Length(r.Length),
			Quantity:      r.Quantity,
			Priority:      r.Priority,
			FromOrderList: r.FromOrderList,
		})
	}

	return lines, nil
}
