// ABOUTME: Scenario input parameters for a roadmap calculation
// ABOUTME: Production rates, consumable lives, and crew model settings

package models

import "strings"

// ScenarioInputs carries the per-request production parameters. All
// values describe one furnace maintenance area.
type ScenarioInputs struct {
	// KK switches the alternative tapping practice on ("yes") or off.
	// With KK active the CNT is not exchanged.
	KK string `json:"kk"`

	HeatPerDay float64 `json:"heat_per_day"`

	// Consumable lives in heats per piece.
	PlateLife float64 `json:"plate_life"`
	CNTLife   float64 `json:"cnt_life"`
	INLife    float64 `json:"in_life"`
	PPLife    float64 `json:"pp_life"`

	// O2SuccessRate is the fraction of heats where oxygen lancing is
	// avoided after automation, in [0, 1].
	O2SuccessRate float64 `json:"o2_success_rate"`

	WorkingDaysPerMonth float64 `json:"working_days_per_month"`
	WorkingDaysPerYear  float64 `json:"working_days_per_year"`

	// Crew and labor cost model (optional).
	CrewModelEnabled       bool    `json:"crew_model_enabled"`
	CrewPerShiftBaseline   float64 `json:"crew_per_shift_baseline"`
	ShiftsPerDay           float64 `json:"shifts_per_day"`
	MinCrewPerShiftHSE     float64 `json:"min_crew_per_shift_hse"`
	AvgOperatorCostPerYear float64 `json:"avg_operator_cost_per_year"`
	AutomatedCrewPerShift  float64 `json:"automated_crew_per_shift"`
}

// KKActive reports whether the KK practice flag is set. The comparison
// ignores case and surrounding whitespace.
func (in ScenarioInputs) KKActive() bool {
	return strings.EqualFold(strings.TrimSpace(in.KK), "yes")
}
