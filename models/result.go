// ABOUTME: Calculation request and response structures
// ABOUTME: JSON shapes for the roadmap calculation endpoints

package models

// CalculationRequest is one scenario: inputs plus optional per-
// operation overrides.
type CalculationRequest struct {
	Inputs    ScenarioInputs     `json:"inputs"`
	Overrides OperationOverrides `json:"overrides,omitempty"`
}

// PhaseResult carries the aggregated figures for one evaluation phase.
// Crew fields are zero unless the request enabled the crew model.
type PhaseResult struct {
	RemainingWorkloadHoursPerDay float64 `json:"remaining_workload_hours_per_day"`
	SavedWorkloadHoursPerDay     float64 `json:"saved_workload_hours_per_day"`
	SavingFraction               float64 `json:"saving_fraction"`
	SavedHoursPerMonth           float64 `json:"saved_hours_per_month"`
	SavedHoursPerYear            float64 `json:"saved_hours_per_year"`

	SolutionsUsed             []string `json:"solutions_used"`
	InvestmentTotalKEUR       float64  `json:"investment_total_k_eur"`
	InvestmentIncrementalKEUR float64  `json:"investment_incremental_k_eur"`

	CrewPerShiftRequired     float64 `json:"crew_per_shift_required"`
	PaidHeadcountBaseline    float64 `json:"paid_headcount_baseline"`
	PaidHeadcountRequired    float64 `json:"paid_headcount_required"`
	PaidHeadcountSaved       float64 `json:"paid_headcount_saved"`
	AnnualLaborCostReduction float64 `json:"annual_labor_cost_reduction"`
}

// CalculationResponse is the full result of one calculation.
type CalculationResponse struct {
	BaselineWorkloadHoursPerDay float64             `json:"baseline_workload_hours_per_day"`
	Phases                      map[int]PhaseResult `json:"phases"`
	CrewModelEnabled            bool                `json:"crew_model_enabled"`
}
