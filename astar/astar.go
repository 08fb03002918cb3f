package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Search is one incremental A* run over a grid.
// It is not safe for concurrent use.
type Search struct {
	g        *gridgraph.GridGraph
	opts     Options
	frontier *search.Frontier

	state      search.State
	lease      gridgraph.Lease
	start, end int
	startPos   gridgraph.Position
	endPos     gridgraph.Position

	width     int
	mazeMode  bool
	widenings int
	steps     int

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

// Start validates the endpoints, takes the grid's lease, decides maze mode
// from the current obstacle density and seeds the frontier with the start
// node at G = 0, H = Heuristic(start, end).
func (s *Search) Start(start, end gridgraph.Position, corridorWidth int) error {
	if corridorWidth < 0 {
		return fmt.Errorf("astar: Start: width %d: %w", corridorWidth, ErrBadCorridorWidth)
	}
	si, ei, err := search.ValidateEndpoints(s.g, start, end)
	if err != nil {
		return err
	}
	lease, err := s.g.Acquire()
	if err != nil {
		return fmt.Errorf("astar: Start: %w", err)
	}

	if s.frontier == nil {
		s.frontier = search.NewFrontier(s.g.Len())
	}
	s.lease = lease
	s.start, s.end = si, ei
	s.startPos, s.endPos = start, end
	s.width = corridorWidth
	s.mazeMode = s.g.Density() > s.opts.MazeDensityThreshold
	s.widenings, s.steps = 0, 0
	s.path, s.cost = nil, 0

	s.seed()
	s.state = search.Running

	return nil
}

// seed clears the search fields and pushes the start node.
func (s *Search) seed() {
	s.g.ClearSearchState()
	s.frontier.Reset()

	n := s.g.At(s.start)
	n.Cost = 0
	n.Heuristic = Heuristic(s.startPos, s.endPos)
	s.frontier.Push(s.start, search.Key{Priority: n.Heuristic, Tie: s.g.Ordinal(s.start)})
}

// Step finalizes the next frontier node and relaxes its neighbors.
//
//   - Empty frontier, corridor still widenable → Running, Restarted, no node.
//   - Empty frontier otherwise → Exhausted, no node.
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
		if !s.mazeMode && s.width < s.opts.MaxCorridorWidth {
			s.width++
			s.widenings++
			s.seed()
			s.opts.OnWiden(s.width)
			return search.StepResult{State: s.state, Restarted: true}, nil
		}
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

// relax improves open neighbors of u. Outside maze mode a neighbor must lie
// in the corridor to be considered at all.
func (s *Search) relax(u, cost int) {
	for _, e := range s.g.Edges(u) {
		nb := s.g.At(e.To)
		if nb.Obstacle || nb.Visited {
			continue
		}
		p := s.g.Position(e.To)
		if !s.mazeMode && !InCorridor(p, s.startPos, s.endPos, s.width) {
			continue
		}
		candidate := cost + e.Weight
		if candidate >= nb.Cost {
			continue
		}
		nb.Cost = candidate
		nb.Heuristic = Heuristic(p, s.endPos)
		nb.Pred = u
		s.frontier.Push(e.To, search.Key{Priority: candidate + nb.Heuristic, Tie: s.g.Ordinal(e.To)})
		s.opts.OnRelax(p, candidate)
	}
}

func (s *Search) finish(st search.State) {
	s.state = st
	s.frontier.Reset()
	s.g.Release(s.lease)
}

// State returns the current state.
func (s *Search) State() search.State { return s.state }

// Steps returns the number of Step calls that did work since Start,
// widening steps included.
func (s *Search) Steps() int { return s.steps }

// MazeMode reports whether the corridor restriction is off for this run.
func (s *Search) MazeMode() bool { return s.mazeMode }

// CorridorWidth returns the current corridor width.
func (s *Search) CorridorWidth() int { return s.width }

// Widenings returns how many times the corridor was widened since Start.
func (s *Search) Widenings() int { return s.widenings }

// Path returns a copy of the path found, start first.
// Returns search.ErrNotTerminal unless the search is Found.
func (s *Search) Path() ([]gridgraph.Position, error) {
	if s.state != search.Found {
		return nil, search.ErrNotTerminal
	}
	out := make([]gridgraph.Position, len(s.path))
	copy(out, s.path)
	return out, nil
}

// Cost returns the G cost of the end once Found.
func (s *Search) Cost() (int, error) {
	if s.state != search.Found {
		return 0, search.ErrNotTerminal
	}
	return s.cost, nil
}
