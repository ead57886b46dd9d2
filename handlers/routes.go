// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes with their HTTP methods and handlers

package handlers

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path (e.g., "/api/v1/health")
	Handler http.HandlerFunc // Handler function
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},

		// Catalogue
		{Method: http.MethodGet, Path: "/api/v1/catalogue", Handler: h.GetCatalogue},

		// Roadmap calculation
		{Method: http.MethodPost, Path: "/api/v1/roadmap/calculate", Handler: h.Calculate},
		{Method: http.MethodPost, Path: "/api/v1/roadmap/batch", Handler: h.CalculateBatch},
		{Method: http.MethodPost, Path: "/api/v1/roadmap/export", Handler: h.Export},
		{Method: http.MethodGet, Path: "/api/v1/roadmap/export", Handler: h.ExportLast},

		// Documentation
		{Method: http.MethodGet, Path: "/api/v1/openapi.yaml", Handler: h.OpenAPISpec},
	}
}
