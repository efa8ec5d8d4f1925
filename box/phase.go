package box

// Phase is the box's coarse lifecycle stage.
type Phase string

const (
	PhaseUnresolved Phase = "unobserved"
	PhaseSuperposed Phase = "superposition"
	PhaseObserved   Phase = "observed"
)

// Valid reports whether p is one of the three known phases.
func (p Phase) Valid() bool {
	switch p {
	case PhaseUnresolved, PhaseSuperposed, PhaseObserved:
		return true
	}
	return false
}

func (p Phase) String() string {
	return string(p)
}

// Descriptor values held outside the observed phase.
const (
	Undefined           = "undefined"
	AllPossibleStates   = "all possible states"
	AllPossibleThoughts = "all possible thoughts"
)
