package observability

import (
	"context"
	"log/slog"
)

// SlogObserver writes container events to a structured logger, capturing
// event type, source, timestamp, and associated metadata. The slog level is
// derived from the event's severity via Level.SlogLevel, so verbose
// transition chatter lands at Debug while misuse surfaces at Error.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//	observer := observability.NewSlogObserver(logger)
//	observability.RegisterObserver("production", observer)
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver creates a SlogObserver with the specified logger. Pass
// slog.Default() for the default logger configuration.
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	return &SlogObserver{
		logger: logger,
	}
}

// OnEvent logs the event with structured fields. The context is propagated
// to LogAttrs for cancellation and tracing integration.
func (o *SlogObserver) OnEvent(ctx context.Context, event Event) {
	o.logger.LogAttrs(
		ctx,
		event.Level.SlogLevel(),
		"Event",
		slog.String("type", string(event.Type)),
		slog.String("source", event.Source),
		slog.Time("timestamp", event.Timestamp),
		slog.Any("data", event.Data),
	)
}
