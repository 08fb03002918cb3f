package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a non-positive width or height.
	ErrEmptyGrid = errors.New("gridgraph: width and height must be positive")
	// ErrOutOfBounds indicates a position outside [0,W)×[0,H).
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
	// ErrAlreadyRunning indicates a search already holds the grid's lease.
	ErrAlreadyRunning = errors.New("gridgraph: a search is already running on this grid")
)
