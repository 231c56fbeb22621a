package observability

import "context"

// MultiObserver broadcasts events to multiple wrapped observers, for example
// logging to stderr while also feeding a metrics collector. It is not safe
// to modify after construction; provide all observers at creation time.
type MultiObserver struct {
	observers []Observer
}

// NewMultiObserver creates a MultiObserver that broadcasts to all provided
// observers. Nil observers are filtered out during construction.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

// OnEvent forwards the event to all wrapped observers sequentially, in the
// order they were provided. The context is propagated to each observer.
func (m *MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, obs := range m.observers {
		obs.OnEvent(ctx, event)
	}
}
