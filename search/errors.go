package search

import "errors"

// Sentinel errors shared by all step-driven searches.
var (
	// ErrInvalidEndpoints indicates an unset, out-of-bounds or blocked endpoint.
	ErrInvalidEndpoints = errors.New("search: invalid endpoints")

	// ErrNotTerminal indicates a path was requested before the end was found.
	ErrNotTerminal = errors.New("search: no path available before the search is found")

	// ErrTerminal is returned by Step once the search is Found or Exhausted.
	ErrTerminal = errors.New("search: already terminal")

	// ErrIdle is returned by Step before the search was started.
	ErrIdle = errors.New("search: not started")

	// ErrAborted indicates the grid was reset while the search was running.
	ErrAborted = errors.New("search: aborted by grid reset")
)
