// ABOUTME: HTTP handler for the health endpoint
// ABOUTME: Reports engine status and whether a calculation is cached for export

package handlers

import "net/http"

// Health returns API health status including catalogue size and
// whether a last calculation is available for export.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	_, cached := h.cache.Get(lastCalculationKey)

	resp := map[string]interface{}{
		"status":                  "ok",
		"catalogue_operations":    len(h.calc.Catalogue()),
		"last_calculation_cached": cached,
	}

	h.writeJSON(w, http.StatusOK, resp)
}
