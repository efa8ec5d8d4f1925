package box

import (
	"maps"
	"slices"
)

// Known intents with deterministic outcomes.
const (
	IntentPeaceful = "peaceful"
	IntentCurious  = "curious"
	IntentAnxious  = "anxious"
)

// DefaultIntent is used by ObserveDefault unless overridden.
const DefaultIntent = IntentCurious

// Outcome is the descriptor pair an observation collapses into.
type Outcome struct {
	Physical string `json:"physical_state" yaml:"physical_state"`
	Mental   string `json:"mental_state" yaml:"mental_state"`
}

var outcomes = map[string]Outcome{
	IntentPeaceful: {Physical: "harmonious", Mental: "serene"},
	IntentCurious:  {Physical: "dynamic", Mental: "inquisitive"},
	IntentAnxious:  {Physical: "chaotic", Mental: "turbulent"},
}

var (
	physicalPool = []string{"stable", "fluctuating", "resonant"}
	mentalPool   = []string{"contemplative", "focused", "wandering"}
)

// Resolve maps an intent to its outcome. Unknown intents draw the physical and
// mental descriptors independently from their pools; random reports whether
// that branch was taken.
func Resolve(intent string, rng Rand) (out Outcome, random bool) {
	if fixed, ok := outcomes[intent]; ok {
		return fixed, false
	}
	return Outcome{
		Physical: pick(rng, physicalPool),
		Mental:   pick(rng, mentalPool),
	}, true
}

// Intents returns the intents with fixed outcomes, sorted.
func Intents() []string {
	return slices.Sorted(maps.Keys(outcomes))
}

// PhysicalPool returns a copy of the physical descriptors used for unknown intents.
func PhysicalPool() []string { return slices.Clone(physicalPool) }

// MentalPool returns a copy of the mental descriptors used for unknown intents.
func MentalPool() []string { return slices.Clone(mentalPool) }
