// Package store provides a guarded finite-state holder with a reactive
// subscription contract, letting interface code react to state transitions.
//
// A container enumerates a fixed set of named states at construction,
// tracks the single active one, and notifies subscribers synchronously on
// every transition. It is not a state-machine engine: there is no
// transition table and no validation of legal transitions — any state may
// follow any other. The guards protect against API misuse, not workflow
// mistakes.
//
// # Construction
//
// States are declared as ordered entries; the first one is the initial
// active state:
//
//	h, err := store.New(nil,
//	    store.Entry{Name: "UNKNOWN", Context: map[string]any{"id": 0}},
//	    store.Entry{Name: "OK", Context: map[string]any{"id": 1}},
//	    store.Entry{Name: "NOT_OK", Context: map[string]any{"id": 2}},
//	)
//
// # Transitions and subscriptions
//
// Set keeps the stored context, SetWith replaces it first. Both notify
// every subscriber synchronously, in subscription order, after current and
// context are fully applied:
//
//	id, cancel := h.Subscribe(func(h *store.Handle) {
//	    fmt.Println("now in", h.Current())
//	})
//	// callback already ran once here with the current state
//	h.Set("OK")
//	h.SetWith("NOT_OK", map[string]any{"error": "bad"})
//	cancel()
//
// # The guard
//
// Handle.Get fails with ErrUnknownProperty for undeclared names and
// Handle.Write rejects every direct write with ErrIllegalMutation, so all
// mutation passes through the Set choke point and no state change bypasses
// notification. Handle.Internal returns the unguarded container for
// advanced use.
//
// # Execution model
//
// Everything is single-threaded and synchronous: no batching, no deferred
// delivery, no internal locking. A single logical goroutine is expected to
// drive all transitions and subscriptions.
//
// # Observability
//
// Containers emit events (container.create, state.transition,
// subscriber.add, ...) through an observability.Observer. Use NoOpObserver
// for zero overhead, or resolve one by name via NewFromConfig and the
// observer registry.
package store
