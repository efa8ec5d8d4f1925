package observability

import "context"

// MultiObserver fans out events to multiple observers in order.
type MultiObserver struct {
	observers []Observer
}

// NewMultiObserver creates a MultiObserver over the non-nil observers given.
// Nested MultiObservers are flattened.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		switch o := obs.(type) {
		case nil:
		case *MultiObserver:
			filtered = append(filtered, o.observers...)
		default:
			filtered = append(filtered, o)
		}
	}
	return &MultiObserver{observers: filtered}
}

// Len reports how many observers receive each event.
func (m *MultiObserver) Len() int {
	return len(m.observers)
}

func (m *MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, obs := range m.observers {
		obs.OnEvent(ctx, event)
	}
}
