package observability

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

var (
	observers = map[string]Observer{
		"noop": NoOpObserver{},
		"slog": NewSlogObserver(nil),
	}
	mutex sync.RWMutex
)

// GetObserver returns a registered observer by name. "noop" and "slog" are
// always present; "slog" logs through whatever slog.Default is at emit time.
func GetObserver(name string) (Observer, error) {
	mutex.RLock()
	defer mutex.RUnlock()

	obs, exists := observers[name]
	if !exists {
		return nil, fmt.Errorf("unknown observer: %s", name)
	}
	return obs, nil
}

// RegisterObserver adds or replaces a named observer.
func RegisterObserver(name string, observer Observer) {
	mutex.Lock()
	defer mutex.Unlock()

	observers[name] = observer
}

// Names lists registered observer names in sorted order.
func Names() []string {
	mutex.RLock()
	defer mutex.RUnlock()

	return slices.Sorted(maps.Keys(observers))
}
