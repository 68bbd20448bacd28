package repositories

import (
	"beam-stacking-service/internal/domain"
	"context"
	"sort"
)

// MemoryBeamRepository serves a fixed catalog held in memory.
type MemoryBeamRepository struct {
	m map[string]domain.BeamSpec
}

func NewMemoryBeamRepository(specs []domain.BeamSpec) *MemoryBeamRepository {
	m := make(map[string]domain.BeamSpec, len(specs))
	for _, s := range specs {
		m[s.BeamID] = s
	}
	return &MemoryBeamRepository{m: m}
}

func (r *MemoryBeamRepository) ListBeams(ctx context.Context) ([]domain.BeamSpec, error) {
	out := make([]domain.BeamSpec, 0, len(r.m))
	for _, s := range r.m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BeamID < out[j].BeamID })
	return out, nil
}

func (r *MemoryBeamRepository) GetBeams(ctx context.Context, ids []string) ([]domain.BeamSpec, error) {
	out := make([]domain.BeamSpec, 0, len(ids))
	for _, id := range uniqueIDs(ids) {
		if s, ok := r.m[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}
