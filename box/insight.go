package box

import "slices"

var insights = []string{
	"Mind and matter are two sides of the same coin",
	"Observation changes both observer and observed",
	"Consciousness shapes reality through intention",
	"The boundary between mind and matter is an illusion",
	"Awareness is the bridge between thought and form",
}

// Insights returns a copy of the phrases Meditate chooses from.
func Insights() []string {
	return slices.Clone(insights)
}
