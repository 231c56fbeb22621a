package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tailored-agentic-units/statebox/observability"
)

// Entry declares one state at construction time: a name and its initial
// context payload. Entries are ordered; the first entry becomes the active
// state of a new container.
type Entry struct {
	Name    string
	Context map[string]any
}

// Callback is invoked with the guarded handle once synchronously on
// subscribe and then once per transition, in subscription order, until
// unsubscribed.
type Callback func(h *Handle)

type subscriber struct {
	id string
	fn Callback
}

// Container holds a fixed set of named states, the pointer to the active
// one, and the ordered subscriber list. The state set is sealed at
// construction; the only mutations afterwards are transitions via Set and
// SetWith and subscriber churn.
//
// Container assumes a single logical goroutine drives all transitions and
// subscriptions and therefore takes no internal locks. Delivery is fully
// synchronous: Set returns only after every subscriber has been notified.
//
// A callback may call Set again during notification. The nested transition
// runs its own notification pass to completion before the outer pass
// resumes, so deep reentrancy recurses accordingly; callers who transition
// from inside callbacks are responsible for ensuring the chain terminates.
type Container struct {
	id       string
	names    []string
	contexts map[string]map[string]any
	current  string
	subs     []subscriber
	handle   *Handle
	observer observability.Observer
}

// New creates a container from the given entries and returns its guarded
// handle. The first entry becomes the active state.
//
// A nil observer falls back to NoOpObserver. Nil entry contexts are
// normalized to empty maps so Now never returns nil for a declared state.
//
// Returns ErrInvalidConfiguration when entries is empty, a name is empty,
// or a name repeats.
//
// Example:
//
//	h, err := store.New(nil,
//	    store.Entry{Name: "UNKNOWN"},
//	    store.Entry{Name: "OK", Context: map[string]any{"id": 1}},
//	)
func New(observer observability.Observer, entries ...Entry) (*Handle, error) {
	if observer == nil {
		observer = observability.NoOpObserver{}
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: at least one state required", ErrInvalidConfiguration)
	}

	c := &Container{
		id:       uuid.New().String(),
		names:    make([]string, 0, len(entries)),
		contexts: make(map[string]map[string]any, len(entries)),
		observer: observer,
	}
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: empty state name", ErrInvalidConfiguration)
		}
		if _, exists := c.contexts[e.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate state %q", ErrInvalidConfiguration, e.Name)
		}
		ctx := e.Context
		if ctx == nil {
			ctx = make(map[string]any)
		}
		c.names = append(c.names, e.Name)
		c.contexts[e.Name] = ctx
	}
	c.current = c.names[0]
	c.handle = &Handle{container: c}

	c.emit(EventContainerCreate, observability.LevelVerbose, map[string]any{
		"states":  len(c.names),
		"initial": c.current,
	})

	return c.handle, nil
}

// Is reports whether name is the active state. No side effects.
func (c *Container) Is(name string) bool {
	return c.current == name
}

// Current returns the name of the active state.
func (c *Container) Current() string {
	return c.current
}

// Now returns the context of the active state. The map is the stored value
// itself, not a copy; callers must not mutate it — context replacement goes
// through SetWith so that subscribers are notified.
func (c *Container) Now() map[string]any {
	return c.contexts[c.current]
}

// Context returns the stored context for a declared state, active or not.
// Returns ErrUnknownState for undeclared names.
func (c *Container) Context(name string) (map[string]any, error) {
	ctx, exists := c.contexts[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownState, name)
	}
	return ctx, nil
}

// States returns the declared state names in declaration order. The slice
// is a copy.
func (c *Container) States() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Set makes name the active state, keeping its stored context, and
// synchronously notifies every subscriber in subscription order. Returns
// ErrUnknownState for undeclared names, in which case nothing changes and
// nobody is notified.
func (c *Container) Set(name string) error {
	return c.transition(name, nil, false)
}

// SetWith replaces the stored context for name wholesale, makes name the
// active state, and synchronously notifies every subscriber. Subscribers
// observe the post-transition state: both current and the new context are
// applied before the first callback runs.
//
// A nil context is normalized to an empty map. Returns ErrUnknownState for
// undeclared names.
func (c *Container) SetWith(name string, ctx map[string]any) error {
	return c.transition(name, ctx, true)
}

func (c *Container) transition(name string, ctx map[string]any, replace bool) error {
	if _, exists := c.contexts[name]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownState, name)
	}

	if replace {
		if ctx == nil {
			ctx = make(map[string]any)
		}
		c.contexts[name] = ctx
		c.emit(EventContextReplace, observability.LevelVerbose, map[string]any{
			"state": name,
			"keys":  len(ctx),
		})
	}

	from := c.current
	c.current = name
	c.emit(EventTransition, observability.LevelInfo, map[string]any{
		"from": from,
		"to":   name,
	})

	c.notify()
	return nil
}

// notify walks a snapshot of the subscription order, re-checking liveness
// per id so a callback that unsubscribes a later subscriber suppresses that
// call. Subscribers added during the walk are not notified for the
// in-flight transition.
func (c *Container) notify() {
	ids := make([]string, len(c.subs))
	for i, s := range c.subs {
		ids[i] = s.id
	}
	for _, id := range ids {
		if fn, live := c.lookup(id); live {
			fn(c.handle)
		}
	}
}

func (c *Container) lookup(id string) (Callback, bool) {
	for _, s := range c.subs {
		if s.id == id {
			return s.fn, true
		}
	}
	return nil, false
}

// Subscribe appends fn to the subscriber list and invokes it exactly once
// synchronously before returning, so a new subscriber learns the current
// state without waiting for the next transition.
//
// The returned cancel func removes exactly this subscription and is
// idempotent; the id enables explicit removal via Unsubscribe instead.
func (c *Container) Subscribe(fn Callback) (string, func()) {
	id := uuid.New().String()
	c.subs = append(c.subs, subscriber{id: id, fn: fn})

	c.emit(EventSubscribe, observability.LevelVerbose, map[string]any{
		"subscriber":  id,
		"subscribers": len(c.subs),
	})

	fn(c.handle)

	return id, func() { c.Unsubscribe(id) }
}

// Unsubscribe removes the subscriber with the matching id. No-op when the
// id is absent, which makes repeated cancellation harmless.
func (c *Container) Unsubscribe(id string) {
	for i, s := range c.subs {
		if s.id == id {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			c.emit(EventUnsubscribe, observability.LevelVerbose, map[string]any{
				"subscriber":  id,
				"subscribers": len(c.subs),
			})
			return
		}
	}
}

func (c *Container) emit(t observability.EventType, level observability.Level, data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}
	data["container"] = c.id

	c.observer.OnEvent(context.Background(), observability.Event{
		Type:      t,
		Level:     level,
		Timestamp: time.Now(),
		Source:    "store",
		Data:      data,
	})
}
