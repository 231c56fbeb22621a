package observability

import "context"

// NoOpObserver is a zero-cost Observer that discards all events. It is
// stateless and safe to share. Containers fall back to it when constructed
// with a nil observer.
type NoOpObserver struct{}

// OnEvent discards the event without any processing.
func (NoOpObserver) OnEvent(ctx context.Context, event Event) {}
