package astar

import (
	"errors"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const (
	// DefaultCorridorWidth is the corridor width a run starts with when the
	// caller has no preference.
	DefaultCorridorWidth = 4
	// MaxCorridorWidth is the width beyond which the corridor is not widened.
	MaxCorridorWidth = 10
	// MazeDensityThreshold is the obstacle density above which the corridor
	// restriction is disabled.
	MazeDensityThreshold = 0.3
)

// ErrBadCorridorWidth is returned by Start for a negative corridor width.
var ErrBadCorridorWidth = errors.New("astar: corridor width must be non-negative")

// Options configures a Search.
//
// MaxCorridorWidth     – no widening once the corridor reaches this width.
// MazeDensityThreshold – density strictly above it enables maze mode.
// OnFinalize           – called for every popped node with its G cost.
// OnRelax              – called for every improved neighbor with its new G cost.
// OnWiden              – called after every widening with the new width.
type Options struct {
	MaxCorridorWidth     int
	MazeDensityThreshold float64
	OnFinalize           func(p gridgraph.Position, cost int)
	OnRelax              func(p gridgraph.Position, cost int)
	OnWiden              func(width int)
}

// Option represents a functional option for configuring a Search.
type Option func(*Options)

// WithMaxCorridorWidth overrides the widening limit. Panics if n < 0.
func WithMaxCorridorWidth(n int) Option {
	if n < 0 {
		panic("astar: WithMaxCorridorWidth(n<0)")
	}
	return func(o *Options) {
		o.MaxCorridorWidth = n
	}
}

// WithMazeDensityThreshold overrides the maze-mode threshold.
// Panics if d is outside [0, 1].
func WithMazeDensityThreshold(d float64) Option {
	if d < 0 || d > 1 {
		panic("astar: WithMazeDensityThreshold(d outside [0,1])")
	}
	return func(o *Options) {
		o.MazeDensityThreshold = d
	}
}

// WithOnFinalize registers a hook run for every finalized node.
// A nil fn keeps the no-op default.
func WithOnFinalize(fn func(p gridgraph.Position, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// WithOnRelax registers a hook run for every successful relaxation.
// A nil fn keeps the no-op default.
func WithOnRelax(fn func(p gridgraph.Position, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithOnWiden registers a hook run after every corridor widening.
// A nil fn keeps the no-op default.
func WithOnWiden(fn func(width int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnWiden = fn
		}
	}
}

// DefaultOptions returns the widening limit 10, the maze threshold 0.3 and
// no-op hooks.
func DefaultOptions() Options {
	return Options{
		MaxCorridorWidth:     MaxCorridorWidth,
		MazeDensityThreshold: MazeDensityThreshold,
		OnFinalize:           func(gridgraph.Position, int) {},
		OnRelax:              func(gridgraph.Position, int) {},
		OnWiden:              func(int) {},
	}
}
