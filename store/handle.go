package store

import "fmt"

// Accessor pseudo-names recognized by Handle.Get alongside declared state
// names. Both resolve to the active state's context.
const (
	PropertyNow     = "now"
	PropertyCurrent = "current"
)

// Handle is the guarded view of a Container and the type New returns. It is
// what subscribers receive and what application code should hold on to.
//
// The guard enforces two policies the container's notification contract
// depends on:
//
//   - Reads of undeclared names fail with ErrUnknownProperty instead of
//     silently returning nothing, catching state-name typos at the call
//     site.
//   - Every write attempt fails with ErrIllegalMutation, so all mutation
//     funnels through Set/SetWith and no state change can bypass
//     subscriber notification.
//
// Method values taken from a Handle stay bound to its container, so a
// detached h.Set passed around as a func still operates on the same
// storage.
type Handle struct {
	container *Container
}

// Get reads the context stored under name: a declared state name returns
// that state's context, and the pseudo-names PropertyNow and
// PropertyCurrent return the active state's context. Any other name fails
// with ErrUnknownProperty.
func (h *Handle) Get(name string) (map[string]any, error) {
	switch name {
	case PropertyNow, PropertyCurrent:
		return h.container.Now(), nil
	}
	ctx, exists := h.container.contexts[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProperty, name)
	}
	return ctx, nil
}

// Write rejects every direct write, declared name or not. It exists as the
// explicit trap for dynamic writers (data binding, reflection-driven
// templating); statically typed callers are already fenced out by the
// unexported container fields.
func (h *Handle) Write(name string, value any) error {
	return fmt.Errorf("%w: cannot assign %q directly, use Set", ErrIllegalMutation, name)
}

// Internal returns the underlying unguarded container. Escape hatch for
// advanced and test use only.
func (h *Handle) Internal() *Container {
	return h.container
}

// Is reports whether name is the active state.
func (h *Handle) Is(name string) bool {
	return h.container.Is(name)
}

// Current returns the name of the active state.
func (h *Handle) Current() string {
	return h.container.Current()
}

// Now returns the context of the active state.
func (h *Handle) Now() map[string]any {
	return h.container.Now()
}

// Context returns the stored context for a declared state.
func (h *Handle) Context(name string) (map[string]any, error) {
	return h.container.Context(name)
}

// States returns the declared state names in declaration order.
func (h *Handle) States() []string {
	return h.container.States()
}

// Set transitions to name, keeping its stored context.
func (h *Handle) Set(name string) error {
	return h.container.Set(name)
}

// SetWith transitions to name after replacing its stored context.
func (h *Handle) SetWith(name string, ctx map[string]any) error {
	return h.container.SetWith(name, ctx)
}

// Subscribe registers fn and invokes it once synchronously before
// returning.
func (h *Handle) Subscribe(fn Callback) (string, func()) {
	return h.container.Subscribe(fn)
}

// Unsubscribe removes the subscriber with the matching id, if present.
func (h *Handle) Unsubscribe(id string) {
	h.container.Unsubscribe(id)
}
