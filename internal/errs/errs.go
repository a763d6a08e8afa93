// Package errs names the error taxonomy from spec.md §7. Callers use
// errors.Is against these sentinels rather than matching on message text.
package errs

import "errors"

var (
	// ErrInvalidInput covers malformed external input: mismatched
	// cipher/crib lengths, a self-encoding letter, an unknown rotor or
	// reflector name, or a malformed stecker pair.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyMenu means menu construction found no connected subgraph to
	// crack against (an empty crib, or otherwise pathological input).
	ErrEmptyMenu = errors.New("menu contains no connected subgraph")

	// ErrInternalInvariant marks a violated internal invariant (wire
	// symmetry broken, live-wire count out of range, ...). Its presence
	// indicates an implementation bug, not a bad input.
	ErrInternalInvariant = errors.New("internal invariant violated")
)
