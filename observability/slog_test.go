package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/tailored-agentic-units/statebox/observability"
)

func newBufferedSlog(level slog.Level) (*observability.SlogObserver, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return observability.NewSlogObserver(slog.New(handler)), &buf
}

func TestSlogObserver_LogsEventFields(t *testing.T) {
	observer, buf := newBufferedSlog(slog.LevelDebug)

	observer.OnEvent(context.Background(), observability.Event{
		Type:      "state.transition",
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "store",
		Data:      map[string]any{"from": "UNKNOWN", "to": "OK"},
	})

	output := buf.String()
	for _, want := range []string{"state.transition", "source=store", "from:UNKNOWN", "to:OK"} {
		if !strings.Contains(output, want) {
			t.Errorf("log output missing %q:\n%s", want, output)
		}
	}
}

func TestSlogObserver_MapsSeverity(t *testing.T) {
	tests := []struct {
		name  string
		level observability.Level
		want  string
	}{
		{name: "verbose to debug", level: observability.LevelVerbose, want: "level=DEBUG"},
		{name: "info to info", level: observability.LevelInfo, want: "level=INFO"},
		{name: "warning to warn", level: observability.LevelWarning, want: "level=WARN"},
		{name: "error to error", level: observability.LevelError, want: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			observer, buf := newBufferedSlog(slog.LevelDebug)
			observer.OnEvent(context.Background(), observability.Event{
				Type:  "test",
				Level: tt.level,
			})
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("log output missing %q:\n%s", tt.want, buf.String())
			}
		})
	}
}

func TestSlogObserver_RespectsHandlerLevel(t *testing.T) {
	observer, buf := newBufferedSlog(slog.LevelInfo)

	observer.OnEvent(context.Background(), observability.Event{
		Type:  "container.create",
		Level: observability.LevelVerbose,
	})

	if buf.Len() != 0 {
		t.Errorf("verbose event logged despite Info handler threshold:\n%s", buf.String())
	}
}
