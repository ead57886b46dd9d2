// ABOUTME: Operation catalogue with demand formulas and site defaults
// ABOUTME: Defines the ten recurring furnace maintenance operations

package models

// FormulaKind selects how an operation's daily demand is derived from
// the scenario inputs.
type FormulaKind string

const (
	// FormulaHeatMultiple: occurrences = heat_per_day * multiplier.
	FormulaHeatMultiple FormulaKind = "heat_multiple"
	// FormulaPerConsumableLife: occurrences = heat_per_day / life(consumable).
	FormulaPerConsumableLife FormulaKind = "per_consumable_life"
	// FormulaTipCleaning: occurrences = heat_per_day while the CNT
	// outlives a single heat, zero otherwise.
	FormulaTipCleaning FormulaKind = "tip_cleaning"
	// FormulaCNTExchange: occurrences = heat_per_day / cnt_life, zero
	// when the KK practice is active.
	FormulaCNTExchange FormulaKind = "cnt_exchange"
)

// Consumable identifies which life parameter a per-life formula divides by.
type Consumable string

const (
	ConsumablePlate Consumable = "plate"
	ConsumableCNT   Consumable = "cnt"
	ConsumableIN    Consumable = "in"
	ConsumablePP    Consumable = "pp"
)

// DemandFormula is the data-driven demand rule of one operation.
type DemandFormula struct {
	Kind       FormulaKind `json:"kind"`
	Multiplier float64     `json:"multiplier,omitempty"`
	Consumable Consumable  `json:"consumable,omitempty"`
}

// OperationDefinition is one catalogue entry: identity, demand formula,
// and the site defaults a request may override.
type OperationDefinition struct {
	Name    string        `json:"name"`
	Formula DemandFormula `json:"formula"`

	DefaultTimeMinutes        float64 `json:"default_time_minutes"`
	DefaultPhase              Phase   `json:"default_phase"`
	DefaultCostKEUR           float64 `json:"default_cost_k_eur"`
	DefaultManualCrewPerShift float64 `json:"default_manual_crew_per_shift"`

	// ResidualOnAutomation keeps the failure-driven fraction of the
	// baseline demand after automation instead of dropping to zero.
	ResidualOnAutomation bool `json:"residual_on_automation"`
}

// Canonical operation names.
const (
	OpCylinderManipulation = "Cylinder manipulation"
	OpCNTTipCleaning       = "CNT tip cleaning"
	OpO2Lancing            = "O₂ lancing"
	OpPlateInspection      = "Plate inspection"
	OpCNTExchange          = "CNT exchange"
	OpPlateExchange        = "Plate exchange"
	OpPlateCementing       = "Plate cementing"
	OpINBottomCleaning     = "IN & bottom plate surface cleaning"
	OpINExchange           = "IN exchange"
	OpPPExchange           = "PP exchange"
)

// catalogue holds the built-in defaults in canonical order.
var catalogue = []OperationDefinition{
	{
		Name:                      OpCylinderManipulation,
		Formula:                   DemandFormula{Kind: FormulaHeatMultiple, Multiplier: 2},
		DefaultTimeMinutes:        1,
		DefaultPhase:              Phase1,
		DefaultCostKEUR:           100,
		DefaultManualCrewPerShift: 2,
	},
	{
		Name:                      OpCNTTipCleaning,
		Formula:                   DemandFormula{Kind: FormulaTipCleaning},
		DefaultTimeMinutes:        3,
		DefaultPhase:              Phase2,
		DefaultCostKEUR:           100,
		DefaultManualCrewPerShift: 2,
	},
	{
		Name:                      OpO2Lancing,
		Formula:                   DemandFormula{Kind: FormulaHeatMultiple, Multiplier: 1},
		DefaultTimeMinutes:        4,
		DefaultPhase:              Phase1,
		DefaultCostKEUR:           100,
		DefaultManualCrewPerShift: 2,
		ResidualOnAutomation:      true,
	},
	{
		Name:                      OpPlateInspection,
		Formula:                   DemandFormula{Kind: FormulaHeatMultiple, Multiplier: 1},
		DefaultTimeMinutes:        1,
		DefaultPhase:              Phase2,
		DefaultCostKEUR:           100,
		DefaultManualCrewPerShift: 2,
	},
	{
		Name:                      OpCNTExchange,
		Formula:                   DemandFormula{Kind: FormulaCNTExchange},
		DefaultTimeMinutes:        3,
		DefaultPhase:              Phase1,
		DefaultCostKEUR:           100,
		DefaultManualCrewPerShift: 2,
	},
	{
		Name:                      OpPlateExchange,
		Formula:                   DemandFormula{Kind: FormulaPerConsumableLife, Consumable: ConsumablePlate},
		DefaultTimeMinutes:        7,
		DefaultPhase:              Phase1,
		DefaultCostKEUR:           100,
		DefaultManualCrewPerShift: 2,
	},
	{
		Name:                      OpPlateCementing,
		Formula:                   DemandFormula{Kind: FormulaPerConsumableLife, Consumable: ConsumablePlate},
		DefaultTimeMinutes:        2,
		DefaultPhase:              Phase1,
		DefaultCostKEUR:           100,
		DefaultManualCrewPerShift: 2,
	},
	{
		Name:                      OpINBottomCleaning,
		Formula:                   DemandFormula{Kind: FormulaPerConsumableLife, Consumable: ConsumablePlate},
		DefaultTimeMinutes:        3,
		DefaultPhase:              Phase3,
		DefaultCostKEUR:           100,
		DefaultManualCrewPerShift: 2,
	},
	{
		Name:                      OpINExchange,
		Formula:                   DemandFormula{Kind: FormulaPerConsumableLife, Consumable: ConsumableIN},
		DefaultTimeMinutes:        15,
		DefaultPhase:              Phase3,
		DefaultCostKEUR:           100,
		DefaultManualCrewPerShift: 2,
	},
	{
		Name:                      OpPPExchange,
		Formula:                   DemandFormula{Kind: FormulaPerConsumableLife, Consumable: ConsumablePP},
		DefaultTimeMinutes:        15,
		DefaultPhase:              Phase3,
		DefaultCostKEUR:           100,
		DefaultManualCrewPerShift: 2,
	},
}

// Catalogue returns a copy of the built-in operation catalogue in
// canonical order.
func Catalogue() []OperationDefinition {
	defs := make([]OperationDefinition, len(catalogue))
	copy(defs, catalogue)
	return defs
}

// life returns the consumable life a per-life formula divides by.
func (in ScenarioInputs) life(c Consumable) float64 {
	switch c {
	case ConsumablePlate:
		return in.PlateLife
	case ConsumableCNT:
		return in.CNTLife
	case ConsumableIN:
		return in.INLife
	case ConsumablePP:
		return in.PPLife
	}
	return 0
}

// OccurrencesPerDay evaluates the operation's demand formula against
// the scenario inputs. Lives are assumed validated (> 0).
func (d OperationDefinition) OccurrencesPerDay(in ScenarioInputs) float64 {
	switch d.Formula.Kind {
	case FormulaHeatMultiple:
		return in.HeatPerDay * d.Formula.Multiplier
	case FormulaPerConsumableLife:
		life := in.life(d.Formula.Consumable)
		if life <= 0 {
			return 0
		}
		return in.HeatPerDay / life
	case FormulaTipCleaning:
		// Single-heat CNTs are swapped instead of cleaned; any other
		// life, fractional included, means every heat gets a cleaning.
		if in.CNTLife == 1 {
			return 0
		}
		return in.HeatPerDay
	case FormulaCNTExchange:
		if in.KKActive() {
			return 0
		}
		if in.CNTLife <= 0 {
			return 0
		}
		return in.HeatPerDay / in.CNTLife
	}
	return 0
}
