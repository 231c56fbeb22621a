package observability

import (
	"fmt"
	"log/slog"
	"sync"
)

// observers registry maps observer names to implementations.
// Initialized with "noop" and "slog" so configuration files work out of
// the box without any registration calls.
var (
	observers = map[string]Observer{
		"noop": NoOpObserver{},
		"slog": NewSlogObserver(slog.Default()),
	}
	mutex sync.RWMutex
)

// GetObserver retrieves a registered observer by name.
//
// This enables configuration-driven observer selection: config files name
// observers as strings that are resolved at container construction time.
// Returns an error if the observer name is not registered.
func GetObserver(name string) (Observer, error) {
	mutex.RLock()
	defer mutex.RUnlock()

	obs, exists := observers[name]
	if !exists {
		return nil, fmt.Errorf("unknown observer: %s", name)
	}
	return obs, nil
}

// RegisterObserver registers a custom observer implementation under the
// given name, replacing any previous registration. Thread-safe.
//
// Example:
//
//	observability.RegisterObserver("audit", NewMultiObserver(slogObs, metricsObs))
func RegisterObserver(name string, observer Observer) {
	mutex.Lock()
	defer mutex.Unlock()

	observers[name] = observer
}
