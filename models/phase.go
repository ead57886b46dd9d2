// ABOUTME: Rollout phase type for automation solutions
// ABOUTME: Phases order solutions; Never means an operation stays manual

package models

// Phase is the rollout stage at which an operation's automation
// solution becomes available. Never keeps the operation manual in
// every evaluation phase.
type Phase string

const (
	PhaseNever Phase = "Never"
	Phase1     Phase = "Phase 1"
	Phase2     Phase = "Phase 2"
	Phase3     Phase = "Phase 3"
)

// rankNever sorts Never after every numbered phase.
const rankNever = 999

// Phases returns the selectable phases in display order.
func Phases() []Phase {
	return []Phase{PhaseNever, Phase1, Phase2, Phase3}
}

// Rank returns the numeric order of a phase. Never ranks last.
func (p Phase) Rank() int {
	switch p {
	case Phase1:
		return 1
	case Phase2:
		return 2
	case Phase3:
		return 3
	default:
		return rankNever
	}
}

// Valid reports whether p is one of the selectable phases.
func (p Phase) Valid() bool {
	switch p {
	case PhaseNever, Phase1, Phase2, Phase3:
		return true
	}
	return false
}

// AutomatedBy reports whether a solution selected for p is active at
// evaluation phase n. Never is never active.
func (p Phase) AutomatedBy(n int) bool {
	return p.Rank() <= n
}
