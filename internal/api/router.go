package api

import (
	"beam-stacking-service/internal/api/handlers"
	"beam-stacking-service/internal/domain"
	"beam-stacking-service/internal/ports"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.BeamRepository, defaults domain.StackConfig, logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(logger))

	beamHandler := &handlers.BeamHandler{Repo: repo}
	planHandler := &handlers.PlanHandler{
		Repo:     repo,
		Defaults: defaults,
	}

	r.Get("/health", handlers.Health)
	r.Get("/beams", beamHandler.List)
	r.Post("/plans", planHandler.Plan)

	r.MethodNotAllowed(handlers.MethodNotAllowed)
	r.NotFound(handlers.NotFound)

	return r
}
