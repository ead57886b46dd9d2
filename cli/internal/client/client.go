// ABOUTME: HTTP client for the Automation Roadmap Analyzer API
// ABOUTME: Wraps API calls with proper error handling for CLI usage

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the API client for the Automation Roadmap Analyzer backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// HealthResponse represents the /api/v1/health endpoint response
type HealthResponse struct {
	Status                string `json:"status"`
	CatalogueOperations   int    `json:"catalogue_operations"`
	LastCalculationCached bool   `json:"last_calculation_cached"`
}

// Operation is one catalogue entry with its site defaults
type Operation struct {
	Name                      string  `json:"name"`
	DefaultTimeMinutes        float64 `json:"default_time_minutes"`
	DefaultPhase              string  `json:"default_phase"`
	DefaultCostKEUR           float64 `json:"default_cost_k_eur"`
	DefaultManualCrewPerShift float64 `json:"default_manual_crew_per_shift"`
	ResidualOnAutomation      bool    `json:"residual_on_automation"`
}

// CatalogueResponse represents the /api/v1/catalogue endpoint response
type CatalogueResponse struct {
	Operations []Operation `json:"operations"`
	Phases     []string    `json:"phases"`
}

// ScenarioInputs carries the production parameters of one scenario
type ScenarioInputs struct {
	KK                  string  `json:"kk"`
	HeatPerDay          float64 `json:"heat_per_day"`
	PlateLife           float64 `json:"plate_life"`
	CNTLife             float64 `json:"cnt_life"`
	INLife              float64 `json:"in_life"`
	PPLife              float64 `json:"pp_life"`
	O2SuccessRate       float64 `json:"o2_success_rate"`
	WorkingDaysPerMonth float64 `json:"working_days_per_month"`
	WorkingDaysPerYear  float64 `json:"working_days_per_year"`

	CrewModelEnabled       bool    `json:"crew_model_enabled"`
	CrewPerShiftBaseline   float64 `json:"crew_per_shift_baseline"`
	ShiftsPerDay           float64 `json:"shifts_per_day"`
	MinCrewPerShiftHSE     float64 `json:"min_crew_per_shift_hse"`
	AvgOperatorCostPerYear float64 `json:"avg_operator_cost_per_year"`
	AutomatedCrewPerShift  float64 `json:"automated_crew_per_shift"`
}

// OperationOverride adjusts one operation for a single request
type OperationOverride struct {
	Enabled                  *bool    `json:"enabled,omitempty"`
	TimePerOccurrenceMinutes *float64 `json:"time_per_occurrence_minutes,omitempty"`
	SelectedPhase            *string  `json:"selected_phase,omitempty"`
	CostKEUR                 *float64 `json:"cost_k_eur,omitempty"`
	ManualCrewPerShift       *float64 `json:"manual_crew_per_shift,omitempty"`
}

// CalculationRequest is one scenario: inputs plus optional overrides
type CalculationRequest struct {
	Inputs    ScenarioInputs               `json:"inputs"`
	Overrides map[string]OperationOverride `json:"overrides,omitempty"`
}

// PhaseResult carries the aggregated figures for one evaluation phase
type PhaseResult struct {
	RemainingWorkloadHoursPerDay float64  `json:"remaining_workload_hours_per_day"`
	SavedWorkloadHoursPerDay     float64  `json:"saved_workload_hours_per_day"`
	SavingFraction               float64  `json:"saving_fraction"`
	SavedHoursPerMonth           float64  `json:"saved_hours_per_month"`
	SavedHoursPerYear            float64  `json:"saved_hours_per_year"`
	SolutionsUsed                []string `json:"solutions_used"`
	InvestmentTotalKEUR          float64  `json:"investment_total_k_eur"`
	InvestmentIncrementalKEUR    float64  `json:"investment_incremental_k_eur"`
	CrewPerShiftRequired         float64  `json:"crew_per_shift_required"`
	PaidHeadcountBaseline        float64  `json:"paid_headcount_baseline"`
	PaidHeadcountRequired        float64  `json:"paid_headcount_required"`
	PaidHeadcountSaved           float64  `json:"paid_headcount_saved"`
	AnnualLaborCostReduction     float64  `json:"annual_labor_cost_reduction"`
}

// CalculationResponse is the full result of one calculation
type CalculationResponse struct {
	BaselineWorkloadHoursPerDay float64             `json:"baseline_workload_hours_per_day"`
	Phases                      map[int]PhaseResult `json:"phases"`
	CrewModelEnabled            bool                `json:"crew_model_enabled"`
}

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}

// Health calls the /api/v1/health endpoint
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("invalid response from backend: %w", err)
	}

	return &health, nil
}

// Catalogue calls the /api/v1/catalogue endpoint
func (c *Client) Catalogue(ctx context.Context) (*CatalogueResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/catalogue", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	var catalogue CatalogueResponse
	if err := json.NewDecoder(resp.Body).Decode(&catalogue); err != nil {
		return nil, fmt.Errorf("invalid response from backend: %w", err)
	}

	return &catalogue, nil
}

// Calculate calls POST /api/v1/roadmap/calculate
func (c *Client) Calculate(ctx context.Context, input *CalculationRequest) (*CalculationResponse, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/roadmap/calculate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	var result CalculationResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("invalid response from backend: %w", err)
	}

	return &result, nil
}

// ExportCSV calls POST /api/v1/roadmap/export and streams the CSV body to w
func (c *Client) ExportCSV(ctx context.Context, input *CalculationRequest, includeCosts bool, w io.Writer) error {
	payload := struct {
		CalculationRequest
		IncludeCosts bool `json:"include_costs"`
	}{CalculationRequest: *input, IncludeCosts: includeCosts}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/roadmap/export", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.handleErrorResponse(resp)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to read export: %w", err)
	}
	return nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses API error responses
func (c *Client) handleErrorResponse(resp *http.Response) error {
	var errResp ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
	return fmt.Errorf("backend error: %s", errResp.Error)
}
