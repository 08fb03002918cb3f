package dijkstra

import "github.com/katalvlaran/gridpath/gridgraph"

// Options configures the observation hooks of a Search.
//
// OnFinalize – called when a node is popped and marked visited, with its final cost.
// OnRelax    – called when a neighbor's cost is lowered, with the new cost.
type Options struct {
	OnFinalize func(p gridgraph.Position, cost int)
	OnRelax    func(p gridgraph.Position, cost int)
}

// Option represents a functional option for configuring a Search.
type Option func(*Options)

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

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnFinalize: func(gridgraph.Position, int) {},
		OnRelax:    func(gridgraph.Position, int) {},
	}
}
