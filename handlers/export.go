// ABOUTME: HTTP handlers for CSV export of calculation results
// ABOUTME: POST computes and streams; GET replays the last cached calculation

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/furnaceworks/automation-roadmap/models"
	"github.com/furnaceworks/automation-roadmap/services"
)

// ExportRequest is a calculation request plus export presentation
// flags. Costs are included unless explicitly switched off.
type ExportRequest struct {
	models.CalculationRequest
	IncludeCosts *bool `json:"include_costs,omitempty"`
}

// Export validates and calculates the posted scenario, then streams
// the result as CSV.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := services.ValidateRequest(h.calc.Catalogue(), req.CalculationRequest); err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			h.writeError(w, verr.Message, http.StatusUnprocessableEntity)
			return
		}
		h.writeError(w, "Validation failed", http.StatusUnprocessableEntity)
		return
	}

	resp := h.calc.Calculate(req.CalculationRequest)
	h.cache.Set(lastCalculationKey, lastCalculation{Request: req.CalculationRequest, Response: resp})

	includeCosts := true
	if req.IncludeCosts != nil {
		includeCosts = *req.IncludeCosts
	}

	h.streamCSV(w, req.CalculationRequest, resp, includeCosts)
}

// ExportLast streams the most recent calculation as CSV, or 404 when
// nothing has been calculated yet.
func (h *Handler) ExportLast(w http.ResponseWriter, r *http.Request) {
	cached, found := h.cache.Get(lastCalculationKey)
	if !found {
		h.writeError(w, "No calculation available. Run /api/v1/roadmap/calculate first.", http.StatusNotFound)
		return
	}

	last := cached.(lastCalculation)
	h.streamCSV(w, last.Request, last.Response, true)
}

func (h *Handler) streamCSV(w http.ResponseWriter, req models.CalculationRequest, resp models.CalculationResponse, includeCosts bool) {
	now := time.Now()
	filename := fmt.Sprintf("automation_roadmap_%s.csv", now.Format("2006-01-02"))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	opts := services.ExportOptions{
		IncludeCosts: includeCosts,
		ExportedAt:   now,
	}
	if err := services.WriteCSV(w, h.calc.Catalogue(), req, resp, opts); err != nil {
		// Headers are already sent; log and drop the connection
		slog.Error("CSV export failed mid-stream", "error", err)
	}
}
