// ABOUTME: Aggregation engine for the automation roadmap calculation
// ABOUTME: Computes baseline, per-phase workload, investment, and crew figures

package services

import (
	"github.com/furnaceworks/automation-roadmap/models"
)

// evaluationPhases are the rollout stages results are produced for.
var evaluationPhases = []int{1, 2, 3}

// RoadmapCalculator computes workload and investment metrics for an
// automation scenario. It is stateless apart from the resolved
// catalogue and safe for concurrent use; Calculate assumes its request
// already passed ValidateRequest.
type RoadmapCalculator struct {
	defs []models.OperationDefinition
}

// NewRoadmapCalculator creates a calculator over the given catalogue.
// An empty catalogue falls back to the built-in one.
func NewRoadmapCalculator(defs []models.OperationDefinition) *RoadmapCalculator {
	if len(defs) == 0 {
		defs = models.Catalogue()
	}
	return &RoadmapCalculator{defs: defs}
}

// Catalogue returns the catalogue this calculator evaluates against.
func (c *RoadmapCalculator) Catalogue() []models.OperationDefinition {
	defs := make([]models.OperationDefinition, len(c.defs))
	copy(defs, c.defs)
	return defs
}

// workloadHoursPerDay converts occurrences/day and minutes/occurrence
// into hours/day.
func workloadHoursPerDay(occurrencesPerDay, minutes float64) float64 {
	return occurrencesPerDay * minutes / 60.0
}

// remainingOccurrences applies the automation rule: demand is unchanged
// until the operation's selected phase is reached, then drops to zero --
// except for residual-on-automation operations, which keep the
// failure-driven (1 - success rate) fraction of their baseline.
func remainingOccurrences(op models.ResolvedOperation, baseline float64, evalPhase int, in models.ScenarioInputs) float64 {
	if !op.SelectedPhase.AutomatedBy(evalPhase) {
		return baseline
	}
	if op.Definition.ResidualOnAutomation {
		return (1.0 - in.O2SuccessRate) * baseline
	}
	return 0
}

// crewPerShiftRequired sizes the crew for one evaluation phase: the max
// over enabled operations of the crew each still needs (automated
// operations need the automated crew figure), floored at the HSE
// minimum. With no enabled operations the HSE floor still applies.
func crewPerShiftRequired(ops []models.ResolvedOperation, evalPhase int, in models.ScenarioInputs) float64 {
	floor := in.MinCrewPerShiftHSE
	if floor < 0 {
		floor = 0
	}

	required := -1.0
	for _, op := range ops {
		if !op.Enabled {
			continue
		}
		crew := op.ManualCrewPerShift
		if op.SelectedPhase.AutomatedBy(evalPhase) {
			crew = in.AutomatedCrewPerShift
		}
		if crew > required {
			required = crew
		}
	}

	if required < 0 {
		return floor
	}
	if required < floor {
		return floor
	}
	return required
}

// Calculate runs the full aggregation for one request. It performs no
// I/O and allocates fresh outputs on every call.
func (c *RoadmapCalculator) Calculate(req models.CalculationRequest) models.CalculationResponse {
	in := req.Inputs
	ops := req.Overrides.ResolveAll(c.defs)

	// Baseline and per-phase remaining workload across enabled operations.
	var baselineHours float64
	remainingHours := map[int]float64{1: 0, 2: 0, 3: 0}

	for _, op := range ops {
		if !op.Enabled {
			continue
		}

		occurrences := op.Definition.OccurrencesPerDay(in)
		baselineHours += workloadHoursPerDay(occurrences, op.TimeMinutes)

		for _, n := range evaluationPhases {
			rem := remainingOccurrences(op, occurrences, n, in)
			remainingHours[n] += workloadHoursPerDay(rem, op.TimeMinutes)
		}
	}

	// Cumulative solution list and investment per phase, catalogue order.
	solutions := map[int][]string{}
	investTotal := map[int]float64{}
	for _, n := range evaluationPhases {
		used := []string{}
		var total float64
		for _, op := range ops {
			if !op.Enabled {
				continue
			}
			if op.SelectedPhase.AutomatedBy(n) {
				used = append(used, op.Definition.Name)
				total += op.CostKEUR
			}
		}
		solutions[n] = used
		investTotal[n] = total
	}

	paidHeadcountBaseline := in.CrewPerShiftBaseline * in.ShiftsPerDay

	phases := make(map[int]models.PhaseResult, len(evaluationPhases))
	for _, n := range evaluationPhases {
		remaining := remainingHours[n]
		saved := baselineHours - remaining

		var savingFraction float64
		if baselineHours > 0 {
			savingFraction = saved / baselineHours
		}

		incremental := investTotal[n]
		if n > 1 {
			incremental = investTotal[n] - investTotal[n-1]
		}

		result := models.PhaseResult{
			RemainingWorkloadHoursPerDay: remaining,
			SavedWorkloadHoursPerDay:     saved,
			SavingFraction:               savingFraction,
			SavedHoursPerMonth:           saved * in.WorkingDaysPerMonth,
			SavedHoursPerYear:            saved * in.WorkingDaysPerYear,
			SolutionsUsed:                solutions[n],
			InvestmentTotalKEUR:          investTotal[n],
			InvestmentIncrementalKEUR:    incremental,
		}

		if in.CrewModelEnabled {
			crewRequired := crewPerShiftRequired(ops, n, in)
			headcountRequired := crewRequired * in.ShiftsPerDay
			headcountSaved := paidHeadcountBaseline - headcountRequired
			if headcountSaved < 0 {
				headcountSaved = 0
			}

			result.CrewPerShiftRequired = crewRequired
			result.PaidHeadcountBaseline = paidHeadcountBaseline
			result.PaidHeadcountRequired = headcountRequired
			result.PaidHeadcountSaved = headcountSaved
			result.AnnualLaborCostReduction = headcountSaved * in.AvgOperatorCostPerYear
		}

		phases[n] = result
	}

	return models.CalculationResponse{
		BaselineWorkloadHoursPerDay: baselineHours,
		Phases:                      phases,
		CrewModelEnabled:            in.CrewModelEnabled,
	}
}
