package session

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/search"
)

// Handle identifies a run started by a Session. The zero Handle is never issued.
type Handle uint64

// run is the session-side record of one search.
type run struct {
	algo     Algorithm
	stepper  search.Stepper
	astar    *astar.Search // nil for Dijkstra runs
	steps    int
	reported bool // finished metric and log emitted
}

// Session owns one grid and the runs started on it.
type Session struct {
	cfg     Config
	log     *logrus.Entry
	metrics *metrics

	grid *gridgraph.GridGraph
	runs map[Handle]*run
	last Handle
}

// New validates cfg and builds an empty cfg.Width×cfg.Height board.
func New(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session: New: %w", err)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		cfg:     cfg,
		log:     o.Logger,
		metrics: newMetrics(o.Registerer),
	}
	if err := s.Configure(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}

	return s, nil
}

// Configure replaces the board with an empty width×height grid. Handles
// issued before are forgotten.
func (s *Session) Configure(width, height int) error {
	if s.grid != nil && s.grid.Running() {
		return fmt.Errorf("session: Configure: %w", gridgraph.ErrAlreadyRunning)
	}
	g, err := gridgraph.New(width, height)
	if err != nil {
		return fmt.Errorf("session: Configure: %w", err)
	}

	s.grid = g
	s.cfg.Width, s.cfg.Height = width, height
	s.runs = make(map[Handle]*run)
	s.log.WithFields(logrus.Fields{"width": width, "height": height}).Info("board configured")

	return nil
}

// Config returns the effective configuration.
func (s *Session) Config() Config { return s.cfg }

// Grid exposes the board for rendering. Callers must not mutate it directly
// while a run is in progress.
func (s *Session) Grid() *gridgraph.GridGraph { return s.grid }

// SetObstacle marks or clears p. Rejected while a run holds the grid.
func (s *Session) SetObstacle(p gridgraph.Position, blocked bool) error {
	if s.grid.Running() {
		return fmt.Errorf("session: SetObstacle: %w", gridgraph.ErrAlreadyRunning)
	}
	return s.grid.SetObstacle(p, blocked)
}

// SetStart designates the start used by Run.
func (s *Session) SetStart(p gridgraph.Position) error { return s.grid.SetStart(p) }

// SetEnd designates the end used by Run.
func (s *Session) SetEnd(p gridgraph.Position) error { return s.grid.SetEnd(p) }

// ResetSearchState clears every node's search fields and revokes the grid
// lease. A run in progress reports search.ErrAborted on its next Step.
func (s *Session) ResetSearchState() {
	if s.grid.Running() {
		s.log.Warn("search state reset while a run was in progress")
	}
	s.grid.Reset()
}

// RunDijkstra starts a Dijkstra run from start to end.
func (s *Session) RunDijkstra(start, end gridgraph.Position) (Handle, error) {
	d := dijkstra.New(s.grid)
	if err := d.Start(start, end); err != nil {
		return 0, fmt.Errorf("session: RunDijkstra: %w", err)
	}
	return s.register(&run{algo: Dijkstra, stepper: d}, start, end), nil
}

// RunAStar starts an A* run from start to end with the given initial
// corridor width. Widening limit and maze threshold come from the Config.
func (s *Session) RunAStar(start, end gridgraph.Position, corridorWidth int) (Handle, error) {
	a := astar.New(s.grid,
		astar.WithMaxCorridorWidth(s.cfg.MaxCorridorWidth),
		astar.WithMazeDensityThreshold(s.cfg.MazeDensityThreshold),
		astar.WithOnWiden(func(w int) {
			s.metrics.widenings.Inc()
			s.log.WithField("corridor", w).Debug("corridor widened")
		}),
	)
	if err := a.Start(start, end, corridorWidth); err != nil {
		return 0, fmt.Errorf("session: RunAStar: %w", err)
	}
	h := s.register(&run{algo: AStar, stepper: a, astar: a}, start, end)
	s.log.WithFields(logrus.Fields{
		"handle":    h,
		"corridor":  a.CorridorWidth(),
		"maze_mode": a.MazeMode(),
	}).Debug("corridor policy")

	return h, nil
}

// Run starts algo between the designated start and end. A* begins at
// Config.InitialCorridorWidth. Missing designations fail with
// search.ErrInvalidEndpoints.
func (s *Session) Run(algo Algorithm) (Handle, error) {
	start, ok := s.grid.Start()
	if !ok {
		return 0, fmt.Errorf("session: Run: start not set: %w", search.ErrInvalidEndpoints)
	}
	end, ok := s.grid.End()
	if !ok {
		return 0, fmt.Errorf("session: Run: end not set: %w", search.ErrInvalidEndpoints)
	}

	switch algo {
	case Dijkstra:
		return s.RunDijkstra(start, end)
	case AStar:
		return s.RunAStar(start, end, s.cfg.InitialCorridorWidth)
	}
	return 0, fmt.Errorf("session: Run: %w: %v", ErrUnknownAlgorithm, algo)
}

func (s *Session) register(r *run, start, end gridgraph.Position) Handle {
	s.last++
	h := s.last
	s.runs[h] = r

	s.metrics.started.WithLabelValues(r.algo.String()).Inc()
	s.log.WithFields(logrus.Fields{
		"algorithm": r.algo,
		"handle":    h,
		"start":     start,
		"end":       end,
	}).Info("search started")

	return h
}

func (s *Session) lookup(h Handle) (*run, error) {
	r, ok := s.runs[h]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return r, nil
}

// Step advances run h by one step.
func (s *Session) Step(h Handle) (search.StepResult, error) {
	r, err := s.lookup(h)
	if err != nil {
		return search.StepResult{}, err
	}

	res, err := r.stepper.Step()
	if err != nil {
		if errors.Is(err, search.ErrAborted) {
			s.finish(h, r, OutcomeAborted)
		}
		return res, err
	}

	r.steps++
	s.metrics.steps.WithLabelValues(r.algo.String()).Inc()
	if s.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		s.log.WithFields(s.fields(h, r, res.State)).WithField("node", res.Node).Debug("step")
	}

	switch res.State {
	case search.Found:
		s.finish(h, r, OutcomeFound)
	case search.Exhausted:
		s.finish(h, r, OutcomeExhausted)
	}

	return res, nil
}

func (s *Session) fields(h Handle, r *run, st search.State) logrus.Fields {
	f := logrus.Fields{
		"algorithm": r.algo,
		"handle":    h,
		"state":     st,
		"steps":     r.steps,
	}
	if r.astar != nil {
		f["corridor"] = r.astar.CorridorWidth()
	}
	return f
}

func (s *Session) finish(h Handle, r *run, outcome string) {
	if r.reported {
		return
	}
	r.reported = true

	algo := r.algo.String()
	s.metrics.finished.WithLabelValues(algo, outcome).Inc()
	entry := s.log.WithFields(s.fields(h, r, r.stepper.State()))
	if outcome == OutcomeAborted {
		entry.Warn("search aborted")
		return
	}
	s.metrics.runSteps.WithLabelValues(algo).Observe(float64(r.steps))
	if cost, err := r.stepper.Cost(); err == nil {
		entry = entry.WithField("cost", cost)
	}
	entry.Info("search finished")
}

// State returns the state of run h.
func (s *Session) State(h Handle) (search.State, error) {
	r, err := s.lookup(h)
	if err != nil {
		return search.Idle, err
	}
	return r.stepper.State(), nil
}

// ReconstructPath returns the start→end path of run h once Found,
// search.ErrNotTerminal before.
func (s *Session) ReconstructPath(h Handle) ([]gridgraph.Position, error) {
	r, err := s.lookup(h)
	if err != nil {
		return nil, err
	}
	return r.stepper.Path()
}

// Corridor returns the current corridor width and maze mode of an A* run.
// ok is false for Dijkstra runs.
func (s *Session) Corridor(h Handle) (width int, mazeMode bool, ok bool, err error) {
	r, err := s.lookup(h)
	if err != nil {
		return 0, false, false, err
	}
	if r.astar == nil {
		return 0, false, false, nil
	}
	return r.astar.CorridorWidth(), r.astar.MazeMode(), true, nil
}
