// Package engine holds the lending lifecycle as pure transitions: every
// operation takes a snapshot plus the acting user and returns the next
// snapshot or an error, never mutating its input.
package engine

import "errors"

var (
	// ErrValidation marks bad caller input (empty title, missing dates,
	// requesting your own item).
	ErrValidation = errors.New("validation failed")

	// ErrAuthorization marks an actor touching something they do not own.
	ErrAuthorization = errors.New("not allowed")

	// ErrNotFound marks a reference to an entity missing from the snapshot.
	ErrNotFound = errors.New("not found")

	// ErrState marks a transition from a terminal or wrong status, e.g.
	// approving an already-declined request.
	ErrState = errors.New("invalid state transition")
)
