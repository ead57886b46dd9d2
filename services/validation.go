// ABOUTME: Validation gate for calculation requests
// ABOUTME: Fail-fast checks that run before the aggregation engine

package services

import (
	"fmt"

	"github.com/furnaceworks/automation-roadmap/models"
)

// ValidationError is the single error kind the engine boundary can
// surface. Failures are deterministic: the same request always fails
// with the same message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ValidateRequest checks a calculation request before aggregation.
// Checks run in a fixed order and the first violation is returned;
// disabled operations' override values are not validated.
func ValidateRequest(defs []models.OperationDefinition, req models.CalculationRequest) error {
	in := req.Inputs

	if in.HeatPerDay <= 0 {
		return invalid("heat_per_day must be > 0")
	}
	if in.O2SuccessRate < 0 || in.O2SuccessRate > 1 {
		return invalid("o2_success_rate must be between 0 and 1")
	}
	if in.WorkingDaysPerMonth <= 0 {
		return invalid("working_days_per_month must be > 0")
	}
	if in.WorkingDaysPerYear <= 0 {
		return invalid("working_days_per_year must be > 0")
	}

	lives := []struct {
		name  string
		value float64
	}{
		{"plate_life", in.PlateLife},
		{"cnt_life", in.CNTLife},
		{"in_life", in.INLife},
		{"pp_life", in.PPLife},
	}
	for _, life := range lives {
		if life.value <= 0 {
			return invalid("%s must be > 0", life.name)
		}
	}

	for _, op := range req.Overrides.ResolveAll(defs) {
		if !op.Enabled {
			continue
		}
		if op.TimeMinutes <= 0 {
			return invalid("time_per_occurrence_minutes must be > 0 (check %q)", op.Definition.Name)
		}
		if op.CostKEUR < 0 {
			return invalid("cost must be >= 0 (check %q)", op.Definition.Name)
		}
		if in.CrewModelEnabled && op.ManualCrewPerShift < 0 {
			return invalid("manual_crew_per_shift must be >= 0 (check %q)", op.Definition.Name)
		}
		if !op.SelectedPhase.Valid() {
			return invalid("selected_phase %q is not a valid phase (check %q)", op.SelectedPhase, op.Definition.Name)
		}
	}

	if in.CrewModelEnabled {
		if in.CrewPerShiftBaseline < 0 {
			return invalid("crew_per_shift_baseline must be >= 0")
		}
		if in.ShiftsPerDay <= 0 {
			return invalid("shifts_per_day must be > 0")
		}
		if in.MinCrewPerShiftHSE < 0 {
			return invalid("min_crew_per_shift_hse must be >= 0")
		}
		if in.AvgOperatorCostPerYear < 0 {
			return invalid("avg_operator_cost_per_year must be >= 0")
		}
	}

	return nil
}
