// internal/server/handlers/simulation.go

package handlers

import (
	"encoding/json"
	"net/http"

	"jotfeed/internal/service/simulation"
)

// SimulationHandler handles simulation control requests
type SimulationHandler struct {
	stepper *simulation.Stepper
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(stepper *simulation.Stepper) *SimulationHandler {
	return &SimulationHandler{
		stepper: stepper,
	}
}

// Advance runs one simulation step and returns the actions taken
func (h *SimulationHandler) Advance(w http.ResponseWriter, r *http.Request) {
	type advanceRequest struct {
		Hours float64 `json:"hours"`
	}

	// An empty body advances by the configured step size
	var req advanceRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	if req.Hours < 0 {
		respondWithError(w, http.StatusBadRequest, "Hours must be non-negative", nil)
		return
	}

	actions, err := h.stepper.Step(r.Context(), req.Hours)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to advance simulation", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"actions": actions,
		"count":   len(actions),
	})
}
