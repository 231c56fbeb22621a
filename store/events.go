package store

import "github.com/tailored-agentic-units/statebox/observability"

const (
	// Container lifecycle
	EventContainerCreate observability.EventType = "container.create"

	// Transitions
	EventTransition     observability.EventType = "state.transition"
	EventContextReplace observability.EventType = "context.replace"

	// Subscriptions
	EventSubscribe   observability.EventType = "subscriber.add"
	EventUnsubscribe observability.EventType = "subscriber.remove"
)
