package handlers

import (
	"beam-stacking-service/internal/api/dto"
	"beam-stacking-service/internal/domain"
	"beam-stacking-service/internal/platform/obs"
	"beam-stacking-service/internal/ports"
	"beam-stacking-service/internal/services"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Upper bounds on a single request. Every unit becomes a slot.
const (
	maxOrderLines = 500
	maxOrderUnits = 5000
)

type PlanHandler struct {
	Repo     ports.BeamRepository
	Defaults domain.StackConfig
}

// Plan computes a stacking plan for the posted order.
// Missing configuration fields fall back to the server defaults.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if len(req.Lines) > maxOrderLines {
		writeError(w, r, http.StatusBadRequest, "too many order lines")
		return
	}
	if orderUnits(req.Lines) > maxOrderUnits {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("order exceeds %d beams", maxOrderUnits))
		return
	}

	svcReq := services.PlanLoadRequest{
		Lines:  dto.OrderLines(req.Lines),
		Config: req.Config.Apply(h.Defaults),
	}

	planID := uuid.NewString()

	res, err := services.PlanLoad(r.Context(), svcReq, h.Repo)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidConfiguration), errors.Is(err, domain.ErrInvalidOrderLine):
			writeError(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrBeamNotFound):
			out := dto.NewPlanResponse(planID, &domain.CalculationResult{Errors: []string{err.Error()}})
			writeJSON(w, r, http.StatusUnprocessableEntity, out)
		default:
			log.Error("plan load failed", "req_id", obs.RequestID(r.Context()), "err", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewPlanResponse(planID, res))
}

// orderUnits sums positive quantities, stopping once the cap is passed.
func orderUnits(lines []dto.OrderLineRequest) int {
	total := 0
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		if l.Quantity > maxOrderUnits {
			return l.Quantity
		}
		total += l.Quantity
		if total > maxOrderUnits {
			break
		}
	}
	return total
}
