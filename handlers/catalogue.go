// ABOUTME: HTTP handler for the operation catalogue endpoint
// ABOUTME: Serves the ten operations with their resolved site defaults

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/furnaceworks/automation-roadmap/models"
)

const catalogueCacheKey = "catalogue:all"

// GetCatalogue returns the operation catalogue in canonical order,
// including the selectable phases for UI pickers.
func (h *Handler) GetCatalogue(w http.ResponseWriter, r *http.Request) {
	if cached, found := h.cache.Get(catalogueCacheKey); found {
		slog.Debug("Catalogue cache hit")
		resp := cached.(models.CatalogueResponse)
		resp.Metadata.Cached = true
		h.writeJSON(w, http.StatusOK, resp)
		return
	}

	resp := models.CatalogueResponse{
		Operations: h.calc.Catalogue(),
		Phases:     models.Phases(),
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			Cached:    false,
		},
	}

	h.cache.Set(catalogueCacheKey, resp)
	h.writeJSON(w, http.StatusOK, resp)
}
