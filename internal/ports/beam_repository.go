package ports

import (
	"beam-stacking-service/internal/domain"
	"context"
)

// Port: a boundary for reading beam profiles from the catalog source.
type BeamRepository interface {
	// Retrieve every beam profile, ordered by beam id.
	ListBeams(ctx context.Context) ([]domain.BeamSpec, error)
	// Retrieve the profiles for the given ids. Unknown ids are omitted.
	GetBeams(ctx context.Context, ids []string) ([]domain.BeamSpec, error)
}
