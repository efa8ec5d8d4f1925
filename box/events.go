package box

import "github.com/tailored-agentic-units/statebox/observability"

// Box event types.
const (
	EventCreate           observability.EventType = "box.create"
	EventSuperpose        observability.EventType = "box.superpose"
	EventObserve          observability.EventType = "box.observe"
	EventMeditateStart    observability.EventType = "box.meditate.start"
	EventMeditateComplete observability.EventType = "box.meditate.complete"
	EventMeditateCancel   observability.EventType = "box.meditate.cancel"
)
