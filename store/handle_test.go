package store_test

import (
	"errors"
	"testing"

	"github.com/tailored-agentic-units/statebox/store"
)

func TestHandle_Get(t *testing.T) {
	h := threeStates(t, nil)

	tests := []struct {
		name     string
		property string
		wantKey  string
		wantVal  any
	}{
		{
			name:     "declared state",
			property: "OK",
			wantKey:  "id",
			wantVal:  1,
		},
		{
			name:     "now accessor",
			property: store.PropertyNow,
			wantKey:  "id",
			wantVal:  0,
		},
		{
			name:     "current accessor",
			property: store.PropertyCurrent,
			wantKey:  "id",
			wantVal:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := h.Get(tt.property)
			if err != nil {
				t.Fatalf("Get(%q) error = %v", tt.property, err)
			}
			if got := ctx[tt.wantKey]; got != tt.wantVal {
				t.Errorf("Get(%q)[%s] = %v, want %v", tt.property, tt.wantKey, got, tt.wantVal)
			}
		})
	}
}

func TestHandle_Get_TracksTransitions(t *testing.T) {
	h := threeStates(t, nil)

	if err := h.Set("OK"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	ctx, err := h.Get(store.PropertyNow)
	if err != nil {
		t.Fatalf("Get(now) error = %v", err)
	}
	if ctx["id"] != 1 {
		t.Errorf("Get(now)[id] = %v after Set(OK), want 1", ctx["id"])
	}
}

func TestHandle_Get_UnknownProperty(t *testing.T) {
	h := threeStates(t, nil)

	// the typo guard: misspelled state names fail loudly
	for _, property := range []string{"OKK", "ok", "internal", ""} {
		if _, err := h.Get(property); !errors.Is(err, store.ErrUnknownProperty) {
			t.Errorf("Get(%q) error = %v, want ErrUnknownProperty", property, err)
		}
	}
}

func TestHandle_Write_AlwaysRejected(t *testing.T) {
	h := threeStates(t, nil)

	tests := []struct {
		name     string
		property string
	}{
		{name: "declared state", property: "OK"},
		{name: "undeclared name", property: "WHATEVER"},
		{name: "accessor name", property: store.PropertyNow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.Write(tt.property, map[string]any{"id": 99})
			if !errors.Is(err, store.ErrIllegalMutation) {
				t.Errorf("Write(%q) error = %v, want ErrIllegalMutation", tt.property, err)
			}
		})
	}

	// nothing changed through the rejected writes
	if !h.Is("UNKNOWN") {
		t.Error("Write attempt changed the active state")
	}
	ctx, err := h.Context("OK")
	if err != nil {
		t.Fatalf("Context() error = %v", err)
	}
	if ctx["id"] != 1 {
		t.Errorf("Write attempt changed stored context: %v", ctx)
	}
}

func TestHandle_Internal(t *testing.T) {
	h := threeStates(t, nil)

	c := h.Internal()
	if c == nil {
		t.Fatal("Internal() = nil")
	}

	// the escape hatch operates on the same storage as the handle
	if err := c.Set("OK"); err != nil {
		t.Fatalf("Set() through Internal() error = %v", err)
	}
	if !h.Is("OK") {
		t.Error("transition through Internal() not visible through the handle")
	}
}

func TestHandle_DetachedMethodValues(t *testing.T) {
	h := threeStates(t, nil)

	// method values must stay bound to the underlying container
	set := h.Set
	is := h.Is

	if err := set("NOT_OK"); err != nil {
		t.Fatalf("detached Set() error = %v", err)
	}
	if !is("NOT_OK") {
		t.Error("detached Is() does not observe detached Set()")
	}
	if !h.Is("NOT_OK") {
		t.Error("handle does not observe detached Set()")
	}
}

func TestHandle_SubscribeForwarding(t *testing.T) {
	h := threeStates(t, nil)

	calls := 0
	subscribe := h.Subscribe
	_, cancel := subscribe(func(*store.Handle) { calls++ })
	if calls != 1 {
		t.Errorf("detached Subscribe invoked callback %d times, want 1", calls)
	}

	if err := h.Set("OK"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d after transition, want 2", calls)
	}

	cancel()
	if err := h.Set("NOT_OK"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d after cancel, want still 2", calls)
	}
}
