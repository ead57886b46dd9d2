package models

import "testing"

func testInputs() ScenarioInputs {
	return ScenarioInputs{
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

func TestCatalogueOrderAndSize(t *testing.T) {
	defs := Catalogue()
	if len(defs) != 10 {
		t.Fatalf("Expected 10 operations, got %d", len(defs))
	}

	expected := []string{
		OpCylinderManipulation,
		OpCNTTipCleaning,
		OpO2Lancing,
		OpPlateInspection,
		OpCNTExchange,
		OpPlateExchange,
		OpPlateCementing,
		OpINBottomCleaning,
		OpINExchange,
		OpPPExchange,
	}
	for i, name := range expected {
		if defs[i].Name != name {
			t.Errorf("Position %d: expected %q, got %q", i, name, defs[i].Name)
		}
	}
}

func TestCatalogueReturnsCopy(t *testing.T) {
	defs := Catalogue()
	defs[0].DefaultCostKEUR = 999

	if Catalogue()[0].DefaultCostKEUR != 100 {
		t.Error("Mutating the returned slice must not change the catalogue")
	}
}

func TestOccurrencesPerDay(t *testing.T) {
	in := testInputs()

	tests := []struct {
		name string
		want float64
	}{
		{OpCylinderManipulation, 40},      // heat * 2
		{OpCNTTipCleaning, 0},             // cnt_life == 1
		{OpO2Lancing, 20},                 // heat
		{OpPlateInspection, 20},           // heat
		{OpCNTExchange, 20},               // heat / cnt_life
		{OpPlateExchange, 10},             // heat / plate_life
		{OpPlateCementing, 10},            // heat / plate_life
		{OpINBottomCleaning, 10},          // heat / plate_life
		{OpINExchange, 20.0 / 9.0},        // heat / in_life
		{OpPPExchange, 1},                 // heat / pp_life
	}

	byName := make(map[string]OperationDefinition)
	for _, d := range Catalogue() {
		byName[d.Name] = d
	}

	for _, tt := range tests {
		got := byName[tt.name].OccurrencesPerDay(in)
		if diff := got - tt.want; diff > 1e-12 || diff < -1e-12 {
			t.Errorf("%s: expected %.6f ops/day, got %.6f", tt.name, tt.want, got)
		}
	}
}

func TestTipCleaningActiveWhenLifeAboveOne(t *testing.T) {
	in := testInputs()
	in.CNTLife = 3

	byName := make(map[string]OperationDefinition)
	for _, d := range Catalogue() {
		byName[d.Name] = d
	}

	if got := byName[OpCNTTipCleaning].OccurrencesPerDay(in); got != 20 {
		t.Errorf("Expected tip cleaning 20 ops/day with cnt_life=3, got %.2f", got)
	}
}

func TestTipCleaningZeroOnlyAtLifeOfOne(t *testing.T) {
	byName := make(map[string]OperationDefinition)
	for _, d := range Catalogue() {
		byName[d.Name] = d
	}

	tests := []struct {
		cntLife float64
		want    float64
	}{
		{0.5, 20}, // sub-heat life still cleans every heat
		{1, 0},
		{1.5, 20},
		{2, 20},
	}

	for _, tt := range tests {
		in := testInputs()
		in.CNTLife = tt.cntLife

		if got := byName[OpCNTTipCleaning].OccurrencesPerDay(in); got != tt.want {
			t.Errorf("cnt_life=%.1f: expected %.0f ops/day, got %.2f", tt.cntLife, tt.want, got)
		}
	}
}

func TestCNTExchangeZeroWhenKKActive(t *testing.T) {
	in := testInputs()
	in.KK = "yes"

	byName := make(map[string]OperationDefinition)
	for _, d := range Catalogue() {
		byName[d.Name] = d
	}

	if got := byName[OpCNTExchange].OccurrencesPerDay(in); got != 0 {
		t.Errorf("Expected CNT exchange 0 ops/day with KK=yes, got %.2f", got)
	}

	// Case-insensitive flag
	in.KK = "YES"
	if got := byName[OpCNTExchange].OccurrencesPerDay(in); got != 0 {
		t.Errorf("Expected KK flag to be case-insensitive, got %.2f", got)
	}
}

func TestOnlyO2LancingCarriesResidual(t *testing.T) {
	for _, d := range Catalogue() {
		want := d.Name == OpO2Lancing
		if d.ResidualOnAutomation != want {
			t.Errorf("%s: expected ResidualOnAutomation=%t", d.Name, want)
		}
	}
}
