package store

import "errors"

// Sentinel errors for container construction and access. All of them signal
// programmer-usage errors, not transient conditions; none are retried or
// recovered internally.
var (
	// ErrInvalidConfiguration is returned when a container is constructed
	// from an empty state list, an empty state name, or a duplicate name.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrUnknownState is returned when Set targets a name that was not
	// declared at construction.
	ErrUnknownState = errors.New("unknown state")

	// ErrUnknownProperty is returned by Handle.Get for names that are
	// neither declared states nor the now/current accessors. This is the
	// fail-fast guard against typos in state names at the call site.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrIllegalMutation is returned by Handle.Write for every write
	// attempt. All mutation goes through Set.
	ErrIllegalMutation = errors.New("illegal direct mutation")
)
