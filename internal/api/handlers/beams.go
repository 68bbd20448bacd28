package handlers

import (
	"beam-stacking-service/internal/api/dto"
	"beam-stacking-service/internal/platform/obs"
	"beam-stacking-service/internal/ports"
	"net/http"

	"github.com/charmbracelet/log"
)

// BeamHandler exposes read-only catalog endpoints.
type BeamHandler struct {
	Repo ports.BeamRepository
}

func (h *BeamHandler) List(w http.ResponseWriter, r *http.Request) {
	beams, err := h.Repo.ListBeams(r.Context())
	if err != nil {
		log.Error("list beams failed", "req_id", obs.RequestID(r.Context()), "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListBeamsResponse{
		Beams: make([]dto.BeamResponse, 0, len(beams)),
	}
	for _, b := range beams {
		res.Beams = append(res.Beams, dto.BeamResponse{
			BeamID:   b.BeamID,
			Gauge:    b.Gauge,
			WidthMM:  b.WidthMM,
			HeightMM: b.HeightMM,
			WeightKg: b.WeightKg,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
