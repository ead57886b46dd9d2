// ABOUTME: HTTP handler for batch scenario evaluation
// ABOUTME: Validates all scenarios up front, then computes them concurrently

package handlers

import (
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/furnaceworks/automation-roadmap/models"
	"github.com/furnaceworks/automation-roadmap/services"
)

// maxBatchScenarios caps one batch request.
const maxBatchScenarios = 16

// NamedScenario is one entry of a batch request.
type NamedScenario struct {
	Name string `json:"name"`
	models.CalculationRequest
}

// BatchRequest evaluates several scenarios in one call.
type BatchRequest struct {
	Scenarios []NamedScenario `json:"scenarios"`
}

// BatchResult pairs a scenario name with its calculation response.
type BatchResult struct {
	Name   string                     `json:"name"`
	Result models.CalculationResponse `json:"result"`
}

// BatchResponse preserves the request's scenario order.
type BatchResponse struct {
	Results []BatchResult `json:"results"`
}

// CalculateBatch evaluates up to maxBatchScenarios scenarios. All
// scenarios are validated first so a bad one fails the whole batch
// before any computation runs; evaluation then fans out concurrently
// (the engine is pure and safe for parallel use).
func (h *Handler) CalculateBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if len(req.Scenarios) == 0 {
		h.writeError(w, "At least one scenario is required", http.StatusBadRequest)
		return
	}
	if len(req.Scenarios) > maxBatchScenarios {
		h.writeError(w, fmt.Sprintf("At most %d scenarios per batch", maxBatchScenarios), http.StatusBadRequest)
		return
	}

	defs := h.calc.Catalogue()
	for _, scenario := range req.Scenarios {
		if err := services.ValidateRequest(defs, scenario.CalculationRequest); err != nil {
			name := scenario.Name
			if name == "" {
				name = "(unnamed)"
			}
			h.writeError(w, fmt.Sprintf("Scenario %s: %s", name, err.Error()), http.StatusUnprocessableEntity)
			return
		}
	}

	results := make([]BatchResult, len(req.Scenarios))

	var g errgroup.Group
	for i, scenario := range req.Scenarios {
		g.Go(func() error {
			results[i] = BatchResult{
				Name:   scenario.Name,
				Result: h.calc.Calculate(scenario.CalculationRequest),
			}
			return nil
		})
	}
	// Calculate cannot fail on validated input
	_ = g.Wait()

	h.writeJSON(w, http.StatusOK, BatchResponse{Results: results})
}
