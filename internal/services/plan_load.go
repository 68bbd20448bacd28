package services

import (
	"beam-stacking-service/internal/domain"
	"beam-stacking-service/internal/platform/obs"
	"beam-stacking-service/internal/ports"
	"context"
	"fmt"
	"strings"
)

type PlanLoadRequest struct {
	Lines  []domain.OrderLine
	Config domain.StackConfig
}

// PlanLoad resolves the beams referenced by an order from the repository and
// runs the stacking calculation against that catalog snapshot.
func PlanLoad(
	ctx context.Context,
	req PlanLoadRequest,
	repo ports.BeamRepository,
) (_ *domain.CalculationResult, err error) {
	defer obs.Time(ctx, "plan.load")(&err)

	seen := make(map[string]struct{}, len(req.Lines))
	ids := make([]string, 0, len(req.Lines))
	for _, line := range req.Lines {
		id := strings.TrimSpace(line.BeamID)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	catalog := domain.Catalog{}
	if len(ids) > 0 {
		specs, err := repo.GetBeams(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("plan load: get beams: %w", err)
		}
		catalog = domain.NewCatalog(specs)
	}

	res, err := Calculate(req.Lines, req.Config, catalog)
	if err != nil {
		return nil, fmt.Errorf("plan load: %w", err)
	}

	return res, nil
}
