// ABOUTME: HTTP handler for the roadmap calculation endpoint
// ABOUTME: Validates the request, runs the engine, and caches the result for export

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/furnaceworks/automation-roadmap/models"
	"github.com/furnaceworks/automation-roadmap/services"
)

// Calculate runs one roadmap calculation. Validation failures return
// 422 with the offending field named; no partial results are produced.
// HTTP method validation handled by Go 1.22+ router pattern matching.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req models.CalculationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := services.ValidateRequest(h.calc.Catalogue(), req); err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			slog.Debug("Calculation rejected", "error", verr.Message)
			h.writeError(w, verr.Message, http.StatusUnprocessableEntity)
			return
		}
		h.writeError(w, "Validation failed", http.StatusUnprocessableEntity)
		return
	}

	resp := h.calc.Calculate(req)

	// Keep the pair around so GET export can reproduce it
	h.cache.Set(lastCalculationKey, lastCalculation{Request: req, Response: resp})

	h.writeJSON(w, http.StatusOK, resp)
}
