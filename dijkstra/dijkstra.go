package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Search is one incremental uniform-cost run over a grid.
// It is not safe for concurrent use.
type Search struct {
	g        *gridgraph.GridGraph
	opts     Options
	frontier *search.Frontier

	state      search.State
	lease      gridgraph.Lease
	start, end int
	steps      int

	path []gridgraph.Position // cached on Found
	cost int
}

var _ search.Stepper = (*Search)(nil)

// New returns an Idle search over g.
func New(g *gridgraph.GridGraph, opts ...Option) *Search {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Search{g: g, opts: cfg, state: search.Idle}
}

// Start validates the endpoints, takes the grid's lease, resets every node's
// search fields and seeds the frontier with the start node at cost 0.
//
// A finished Search may be started again; a running one (or any other
// search holding the grid) makes Start fail with gridgraph.ErrAlreadyRunning.
func (s *Search) Start(start, end gridgraph.Position) error {
	si, ei, err := search.ValidateEndpoints(s.g, start, end)
	if err != nil {
		return err
	}
	lease, err := s.g.Acquire()
	if err != nil {
		return fmt.Errorf("dijkstra: Start: %w", err)
	}

	s.g.ClearSearchState()
	if s.frontier == nil {
		s.frontier = search.NewFrontier(s.g.Len())
	} else {
		s.frontier.Reset()
	}

	s.lease, s.start, s.end = lease, si, ei
	s.steps, s.path, s.cost = 0, nil, 0

	s.g.At(si).Cost = 0
	s.frontier.Push(si, search.Key{Priority: 0, Tie: s.g.Ordinal(si)})
	s.state = search.Running

	return nil
}

// Step finalizes the next frontier node and relaxes its neighbors.
//
//   - Empty frontier → Exhausted, no node.
//   - Popped node is the end → Found; the path is cached.
//   - Otherwise → Running, with the finalized node in the result.
func (s *Search) Step() (search.StepResult, error) {
	switch {
	case s.state == search.Idle:
		return search.StepResult{State: s.state}, search.ErrIdle
	case s.state.Terminal():
		return search.StepResult{State: s.state}, search.ErrTerminal
	case !s.g.Holds(s.lease):
		s.state = search.Idle
		return search.StepResult{State: s.state}, search.ErrAborted
	}
	s.steps++

	u, _, ok := s.frontier.Pop()
	if !ok {
		s.finish(search.Exhausted)
		return search.StepResult{State: s.state}, nil
	}

	cur := s.g.At(u)
	cur.Visited = true
	pos := s.g.Position(u)
	s.opts.OnFinalize(pos, cur.Cost)

	if u == s.end {
		s.cost = cur.Cost
		s.path = search.ReconstructPath(s.g, s.start, s.end)
		s.finish(search.Found)
		return search.StepResult{Node: pos, Finalized: true, State: s.state}, nil
	}

	s.relax(u, cur.Cost)

	return search.StepResult{Node: pos, Finalized: true, State: s.state}, nil
}

// relax lowers the cost of every open neighbor of u reachable for less
// than its current cost and re-keys it in the frontier.
func (s *Search) relax(u, cost int) {
	for _, e := range s.g.Edges(u) {
		nb := s.g.At(e.To)
		if nb.Obstacle || nb.Visited {
			continue
		}
		candidate := cost + e.Weight
		if candidate >= nb.Cost {
			continue
		}
		nb.Cost = candidate
		nb.Pred = u
		s.frontier.Push(e.To, search.Key{Priority: candidate, Tie: s.g.Ordinal(e.To)})
		s.opts.OnRelax(s.g.Position(e.To), candidate)
	}
}

func (s *Search) finish(st search.State) {
	s.state = st
	s.frontier.Reset()
	s.g.Release(s.lease)
}

// State returns the current state.
func (s *Search) State() search.State { return s.state }

// Steps returns the number of Step calls that did work since Start.
func (s *Search) Steps() int { return s.steps }

// Path returns a copy of the shortest path, start first.
// Returns search.ErrNotTerminal unless the search is Found.
func (s *Search) Path() ([]gridgraph.Position, error) {
	if s.state != search.Found {
		return nil, search.ErrNotTerminal
	}
	out := make([]gridgraph.Position, len(s.path))
	copy(out, s.path)
	return out, nil
}

// Cost returns the shortest-path length once Found.
func (s *Search) Cost() (int, error) {
	if s.state != search.Found {
		return 0, search.ErrNotTerminal
	}
	return s.cost, nil
}
