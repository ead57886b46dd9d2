// ABOUTME: HTTP handler wiring for the automation roadmap API
// ABOUTME: Holds config, cache, and the calculator shared across endpoints

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/furnaceworks/automation-roadmap/cache"
	"github.com/furnaceworks/automation-roadmap/config"
	"github.com/furnaceworks/automation-roadmap/models"
	"github.com/furnaceworks/automation-roadmap/services"
)

// maxRequestBodySize limits JSON request bodies to 1MB to prevent DOS attacks
const maxRequestBodySize = 1 << 20 // 1MB

// lastCalculationKey is the cache key under which the most recent
// request/response pair is kept for export.
const lastCalculationKey = "roadmap:last"

// lastCalculation is the cached request/response pair.
type lastCalculation struct {
	Request  models.CalculationRequest
	Response models.CalculationResponse
}

type Handler struct {
	cfg   *config.Config
	cache *cache.Cache
	calc  *services.RoadmapCalculator
}

// NewHandler creates the handler set over a resolved catalogue.
// An empty defs slice uses the built-in catalogue.
func NewHandler(cfg *config.Config, c *cache.Cache, defs []models.OperationDefinition) *Handler {
	return &Handler{
		cfg:   cfg,
		cache: c,
		calc:  services.NewRoadmapCalculator(defs),
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// decodeJSON decodes a size-limited JSON request body into dst.
// Returns false after writing an error response on failure.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	// MaxBytesReader only triggers on read, so decode before anything else
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if err.Error() == "http: request body too large" {
			h.writeError(w, "Request body too large", http.StatusBadRequest)
			return false
		}
		h.writeError(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}
