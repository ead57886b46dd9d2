// ABOUTME: Shared helpers for end-to-end API tests
// ABOUTME: Builds a full server with routes and middleware as in main.go

package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/furnaceworks/automation-roadmap/cache"
	"github.com/furnaceworks/automation-roadmap/config"
	"github.com/furnaceworks/automation-roadmap/handlers"
	"github.com/furnaceworks/automation-roadmap/middleware"
	"github.com/furnaceworks/automation-roadmap/models"
)

// newTestServer wires routes and middleware the way main.go does and
// returns a running test server.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{Port: "0", CacheTTL: 300}
	h := handlers.NewHandler(cfg, cache.New(5*time.Minute), nil)

	mux := http.NewServeMux()
	preflight := map[string]bool{}
	for _, route := range h.Routes() {
		handler := middleware.Chain(route.Handler,
			middleware.LogRequest,
			middleware.CORS,
		)
		mux.HandleFunc(route.Method+" "+route.Path, handler)
		if !preflight[route.Path] {
			preflight[route.Path] = true
			mux.HandleFunc("OPTIONS "+route.Path, middleware.CORS(func(w http.ResponseWriter, r *http.Request) {}))
		}
	}

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func scenarioInputs() models.ScenarioInputs {
	return models.ScenarioInputs{
		KK:                  "no",
		HeatPerDay:          20,
		PlateLife:           2,
		CNTLife:             1,
		INLife:              9,
		PPLife:              20,
		O2SuccessRate:       0.95,
		WorkingDaysPerMonth: 22,
		WorkingDaysPerYear:  250,
	}
}

func postJSON(t *testing.T, url string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
}
