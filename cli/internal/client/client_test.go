// ABOUTME: Unit tests for the API client
// ABOUTME: Uses httptest servers to verify request shapes and error handling

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/health" {
			t.Errorf("Expected /api/v1/health, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(HealthResponse{
			Status:              "ok",
			CatalogueOperations: 10,
		})
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("Expected status ok, got %s", resp.Status)
	}
	if resp.CatalogueOperations != 10 {
		t.Errorf("Expected 10 operations, got %d", resp.CatalogueOperations)
	}
}

func TestHealthConnectionError(t *testing.T) {
	c := New("http://127.0.0.1:1")
	_, err := c.Health(context.Background())
	if err == nil {
		t.Fatal("Expected connection error")
	}
	if !strings.Contains(err.Error(), "cannot connect to backend") {
		t.Errorf("Expected connection message, got %v", err)
	}
}

func TestCatalogue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(CatalogueResponse{
			Operations: []Operation{
				{Name: "Plate exchange", DefaultTimeMinutes: 7, DefaultPhase: "Phase 1", DefaultCostKEUR: 100},
			},
			Phases: []string{"Never", "Phase 1", "Phase 2", "Phase 3"},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.Catalogue(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(resp.Operations) != 1 || resp.Operations[0].Name != "Plate exchange" {
		t.Errorf("Unexpected operations: %+v", resp.Operations)
	}
}

func TestCalculate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		var req CalculationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.Inputs.HeatPerDay != 20 {
			t.Errorf("Expected heat_per_day 20, got %v", req.Inputs.HeatPerDay)
		}
		json.NewEncoder(w).Encode(CalculationResponse{
			BaselineWorkloadHoursPerDay: 6.14,
			Phases: map[int]PhaseResult{
				1: {SavedWorkloadHoursPerDay: 3.0},
				2: {SavedWorkloadHoursPerDay: 4.1},
				3: {SavedWorkloadHoursPerDay: 6.0},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.Calculate(context.Background(), &CalculationRequest{
		Inputs: ScenarioInputs{HeatPerDay: 20},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.BaselineWorkloadHoursPerDay != 6.14 {
		t.Errorf("Expected baseline 6.14, got %v", resp.BaselineWorkloadHoursPerDay)
	}
	if len(resp.Phases) != 3 {
		t.Errorf("Expected 3 phases, got %d", len(resp.Phases))
	}
}

func TestCalculateValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "heat_per_day must be > 0", Code: 422})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Calculate(context.Background(), &CalculationRequest{})
	if err == nil {
		t.Fatal("Expected error for 422 response")
	}
	if !strings.Contains(err.Error(), "heat_per_day") {
		t.Errorf("Expected backend message surfaced, got %v", err)
	}
}

func TestExportCSV(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if payload["include_costs"] != false {
			t.Errorf("Expected include_costs false, got %v", payload["include_costs"])
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("Automation Roadmap Analyzer,v1.0.0\n"))
	}))
	defer server.Close()

	c := New(server.URL)
	var buf bytes.Buffer
	err := c.ExportCSV(context.Background(), &CalculationRequest{
		Inputs: ScenarioInputs{HeatPerDay: 20},
	}, false, &buf)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "Automation Roadmap Analyzer") {
		t.Errorf("Expected CSV content, got %q", buf.String())
	}
}

func TestCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(server.URL)
	_, err := c.Health(ctx)
	if err == nil {
		t.Fatal("Expected error for canceled context")
	}
	if !strings.Contains(err.Error(), "request canceled") {
		t.Errorf("Expected cancellation message, got %v", err)
	}
}
