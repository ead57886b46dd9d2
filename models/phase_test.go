package models

import "testing"

func TestPhaseRank(t *testing.T) {
	tests := []struct {
		phase Phase
		rank  int
	}{
		{Phase1, 1},
		{Phase2, 2},
		{Phase3, 3},
	}

	for _, tt := range tests {
		if got := tt.phase.Rank(); got != tt.rank {
			t.Errorf("Rank(%q): expected %d, got %d", tt.phase, tt.rank, got)
		}
	}
}

func TestPhaseNeverNeverMatches(t *testing.T) {
	for n := 1; n <= 3; n++ {
		if PhaseNever.AutomatedBy(n) {
			t.Errorf("Never must not be automated at evaluation phase %d", n)
		}
	}
}

func TestPhaseAutomatedByIsMonotonic(t *testing.T) {
	// Once automated at phase p, automated for every later phase too.
	for _, p := range []Phase{Phase1, Phase2, Phase3} {
		automated := false
		for n := 1; n <= 3; n++ {
			now := p.AutomatedBy(n)
			if automated && !now {
				t.Errorf("%q automated at earlier phase but not at %d", p, n)
			}
			automated = now
		}
	}
}

func TestPhaseValid(t *testing.T) {
	for _, p := range Phases() {
		if !p.Valid() {
			t.Errorf("Expected %q to be valid", p)
		}
	}
	if Phase("Phase 4").Valid() {
		t.Error("Expected Phase 4 to be invalid")
	}
	if Phase("").Valid() {
		t.Error("Expected empty phase to be invalid")
	}
}
