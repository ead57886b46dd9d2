// ABOUTME: Per-request operation overrides and their resolution
// ABOUTME: Optional fields fall back to catalogue defaults when absent

package models

// OperationOverride adjusts one catalogue operation for a single
// request. Nil fields keep the catalogue default.
type OperationOverride struct {
	Enabled                  *bool    `json:"enabled,omitempty"`
	TimePerOccurrenceMinutes *float64 `json:"time_per_occurrence_minutes,omitempty"`
	SelectedPhase            *Phase   `json:"selected_phase,omitempty"`
	CostKEUR                 *float64 `json:"cost_k_eur,omitempty"`
	ManualCrewPerShift       *float64 `json:"manual_crew_per_shift,omitempty"`
}

// OperationOverrides maps canonical operation names to their overrides.
// Keys that match no catalogue operation are ignored.
type OperationOverrides map[string]OperationOverride

// ResolvedOperation is one catalogue operation with all overrides
// applied, ready for the engine.
type ResolvedOperation struct {
	Definition         OperationDefinition
	Enabled            bool
	TimeMinutes        float64
	SelectedPhase      Phase
	CostKEUR           float64
	ManualCrewPerShift float64
}

// Resolve applies the overrides for def's operation, falling back to
// the catalogue defaults. Operations are enabled unless overridden.
func (o OperationOverrides) Resolve(def OperationDefinition) ResolvedOperation {
	r := ResolvedOperation{
		Definition:         def,
		Enabled:            true,
		TimeMinutes:        def.DefaultTimeMinutes,
		SelectedPhase:      def.DefaultPhase,
		CostKEUR:           def.DefaultCostKEUR,
		ManualCrewPerShift: def.DefaultManualCrewPerShift,
	}

	ov, ok := o[def.Name]
	if !ok {
		return r
	}

	if ov.Enabled != nil {
		r.Enabled = *ov.Enabled
	}
	if ov.TimePerOccurrenceMinutes != nil {
		r.TimeMinutes = *ov.TimePerOccurrenceMinutes
	}
	if ov.SelectedPhase != nil {
		r.SelectedPhase = *ov.SelectedPhase
	}
	if ov.CostKEUR != nil {
		r.CostKEUR = *ov.CostKEUR
	}
	if ov.ManualCrewPerShift != nil {
		r.ManualCrewPerShift = *ov.ManualCrewPerShift
	}
	return r
}

// ResolveAll resolves every catalogue operation in order.
func (o OperationOverrides) ResolveAll(defs []OperationDefinition) []ResolvedOperation {
	resolved := make([]ResolvedOperation, len(defs))
	for i, def := range defs {
		resolved[i] = o.Resolve(def)
	}
	return resolved
}
