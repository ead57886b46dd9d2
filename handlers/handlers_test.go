// ABOUTME: Unit tests for the API handlers
// ABOUTME: Exercises calculation, catalogue, batch, and export endpoints

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/furnaceworks/automation-roadmap/cache"
	"github.com/furnaceworks/automation-roadmap/config"
	"github.com/furnaceworks/automation-roadmap/models"
)

func newTestHandler() *Handler {
	cfg := &config.Config{Port: "8080", CacheTTL: 300}
	return NewHandler(cfg, cache.New(time.Minute), nil)
}

func validInputs() models.ScenarioInputs {
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

func postJSON(t *testing.T, h http.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

// --- Health ---

func TestHealth(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", resp["status"])
	}
	if resp["catalogue_operations"] != float64(10) {
		t.Errorf("Expected 10 catalogue operations, got %v", resp["catalogue_operations"])
	}
	if resp["last_calculation_cached"] != false {
		t.Error("Expected no cached calculation on a fresh handler")
	}
}

// --- Catalogue ---

func TestGetCatalogue(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalogue", nil)
	rec := httptest.NewRecorder()
	h.GetCatalogue(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp models.CatalogueResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Operations) != 10 {
		t.Errorf("Expected 10 operations, got %d", len(resp.Operations))
	}
	if len(resp.Phases) != 4 {
		t.Errorf("Expected 4 selectable phases, got %d", len(resp.Phases))
	}
	if resp.Metadata.Cached {
		t.Error("First response should not be marked cached")
	}

	// Second call must come from cache
	rec = httptest.NewRecorder()
	h.GetCatalogue(rec, req)

	var cached models.CatalogueResponse
	if err := json.NewDecoder(rec.Body).Decode(&cached); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !cached.Metadata.Cached {
		t.Error("Second response should be marked cached")
	}
}

// --- Calculate ---

func TestCalculate(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.Calculate, "/api/v1/roadmap/calculate", models.CalculationRequest{
		Inputs: validInputs(),
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.CalculationResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	// (40*1 + 0 + 20*4 + 20*1 + 20*3 + 10*7 + 10*2 + 10*3 + (20/9)*15 + 1*15) / 60
	want := 6.138888888888889
	if diff := resp.BaselineWorkloadHoursPerDay - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected baseline %.6f h/day, got %.6f", want, resp.BaselineWorkloadHoursPerDay)
	}
	if len(resp.Phases) != 3 {
		t.Errorf("Expected 3 phase results, got %d", len(resp.Phases))
	}
	if resp.CrewModelEnabled {
		t.Error("Crew model should be off by default")
	}
}

func TestCalculateValidationFailure(t *testing.T) {
	h := newTestHandler()

	in := validInputs()
	in.HeatPerDay = 0
	rec := postJSON(t, h.Calculate, "/api/v1/roadmap/calculate", models.CalculationRequest{Inputs: in})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d", rec.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Error, "heat_per_day") {
		t.Errorf("Expected error to name heat_per_day, got %q", resp.Error)
	}
}

func TestCalculateInvalidJSON(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/roadmap/calculate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Calculate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed JSON, got %d", rec.Code)
	}
}

func TestCalculateAppliesOverrides(t *testing.T) {
	h := newTestHandler()

	disabled := false
	rec := postJSON(t, h.Calculate, "/api/v1/roadmap/calculate", models.CalculationRequest{
		Inputs: validInputs(),
		Overrides: models.OperationOverrides{
			models.OpCylinderManipulation: {Enabled: &disabled},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.CalculationResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	// Baseline drops by 40 occurrences * 1 min
	want := 6.138888888888889 - 40.0/60.0
	if diff := resp.BaselineWorkloadHoursPerDay - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected baseline %.6f h/day, got %.6f", want, resp.BaselineWorkloadHoursPerDay)
	}
}

// --- Batch ---

func TestCalculateBatch(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.CalculateBatch, "/api/v1/roadmap/batch", BatchRequest{
		Scenarios: []NamedScenario{
			{Name: "base", CalculationRequest: models.CalculationRequest{Inputs: validInputs()}},
			{Name: "faster", CalculationRequest: models.CalculationRequest{Inputs: func() models.ScenarioInputs {
				in := validInputs()
				in.HeatPerDay = 30
				return in
			}()}},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp BatchResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(resp.Results))
	}
	if resp.Results[0].Name != "base" || resp.Results[1].Name != "faster" {
		t.Errorf("Expected request order preserved, got %q, %q", resp.Results[0].Name, resp.Results[1].Name)
	}
	if resp.Results[1].Result.BaselineWorkloadHoursPerDay <= resp.Results[0].Result.BaselineWorkloadHoursPerDay {
		t.Error("Expected higher heat rate to produce a higher baseline")
	}
}

func TestCalculateBatchEmptyRejected(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.CalculateBatch, "/api/v1/roadmap/batch", BatchRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for empty batch, got %d", rec.Code)
	}
}

func TestCalculateBatchTooLargeRejected(t *testing.T) {
	h := newTestHandler()

	scenarios := make([]NamedScenario, maxBatchScenarios+1)
	for i := range scenarios {
		scenarios[i] = NamedScenario{
			Name:               fmt.Sprintf("s%d", i),
			CalculationRequest: models.CalculationRequest{Inputs: validInputs()},
		}
	}

	rec := postJSON(t, h.CalculateBatch, "/api/v1/roadmap/batch", BatchRequest{Scenarios: scenarios})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for oversized batch, got %d", rec.Code)
	}
}

func TestCalculateBatchNamesFailingScenario(t *testing.T) {
	h := newTestHandler()

	bad := validInputs()
	bad.PlateLife = 0
	rec := postJSON(t, h.CalculateBatch, "/api/v1/roadmap/batch", BatchRequest{
		Scenarios: []NamedScenario{
			{Name: "good", CalculationRequest: models.CalculationRequest{Inputs: validInputs()}},
			{Name: "broken", CalculationRequest: models.CalculationRequest{Inputs: bad}},
		},
	})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d", rec.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Error, "broken") {
		t.Errorf("Expected error to name the scenario, got %q", resp.Error)
	}
	if !strings.Contains(resp.Error, "plate_life") {
		t.Errorf("Expected error to name the field, got %q", resp.Error)
	}
}

// --- Export ---

func TestExport(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h.Export, "/api/v1/roadmap/export", ExportRequest{
		CalculationRequest: models.CalculationRequest{Inputs: validInputs()},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Expected text/csv content type, got %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "automation_roadmap_") {
		t.Errorf("Expected attachment filename, got %q", cd)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "SCENARIO INPUTS") {
		t.Error("Expected inputs section in CSV")
	}
	if !strings.Contains(body, "RESULTS BY PHASE") {
		t.Error("Expected results section in CSV")
	}
	if !strings.Contains(body, "Cost [kEUR]") {
		t.Error("Expected cost column by default")
	}
}

func TestExportWithoutCosts(t *testing.T) {
	h := newTestHandler()

	includeCosts := false
	rec := postJSON(t, h.Export, "/api/v1/roadmap/export", ExportRequest{
		CalculationRequest: models.CalculationRequest{Inputs: validInputs()},
		IncludeCosts:       &includeCosts,
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "Cost [kEUR]") {
		t.Error("Expected cost column omitted")
	}
}

func TestExportValidationFailure(t *testing.T) {
	h := newTestHandler()

	in := validInputs()
	in.O2SuccessRate = 1.5
	rec := postJSON(t, h.Export, "/api/v1/roadmap/export", ExportRequest{
		CalculationRequest: models.CalculationRequest{Inputs: in},
	})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422, got %d", rec.Code)
	}
}

func TestExportLastBeforeAnyCalculation(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/roadmap/export", nil)
	rec := httptest.NewRecorder()
	h.ExportLast(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 with no cached calculation, got %d", rec.Code)
	}
}

func TestExportLastReplaysCalculation(t *testing.T) {
	h := newTestHandler()

	if rec := postJSON(t, h.Calculate, "/api/v1/roadmap/calculate", models.CalculationRequest{
		Inputs: validInputs(),
	}); rec.Code != http.StatusOK {
		t.Fatalf("Calculate failed: %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/roadmap/export", nil)
	rec := httptest.NewRecorder()
	h.ExportLast(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Baseline workload (h/day)") {
		t.Error("Expected baseline row in replayed CSV")
	}
}

func TestHealthReportsCachedCalculation(t *testing.T) {
	h := newTestHandler()

	postJSON(t, h.Calculate, "/api/v1/roadmap/calculate", models.CalculationRequest{Inputs: validInputs()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	var resp map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp["last_calculation_cached"] != true {
		t.Error("Expected health to report the cached calculation")
	}
}

// --- Routes ---

func TestRoutesComplete(t *testing.T) {
	h := newTestHandler()
	routes := h.Routes()

	want := map[string]bool{
		"GET /api/v1/health":            false,
		"GET /api/v1/catalogue":         false,
		"POST /api/v1/roadmap/calculate": false,
		"POST /api/v1/roadmap/batch":    false,
		"POST /api/v1/roadmap/export":   false,
		"GET /api/v1/roadmap/export":    false,
		"GET /api/v1/openapi.yaml":      false,
	}

	for _, route := range routes {
		key := route.Method + " " + route.Path
		if _, ok := want[key]; !ok {
			t.Errorf("Unexpected route %s", key)
			continue
		}
		want[key] = true
		if route.Handler == nil {
			t.Errorf("Route %s has no handler", key)
		}
	}

	for key, seen := range want {
		if !seen {
			t.Errorf("Missing route %s", key)
		}
	}
}

func TestOpenAPISpecServed(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/openapi.yaml", nil)
	rec := httptest.NewRecorder()
	h.OpenAPISpec(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "openapi:") {
		t.Error("Expected OpenAPI document body")
	}
}
