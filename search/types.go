package search

import "github.com/katalvlaran/gridpath/gridgraph"

// State is the lifecycle position of a search.
type State int

const (
	// Idle: constructed but not started, or aborted.
	Idle State = iota
	// Running: the frontier may still yield nodes.
	Running
	// Found: the end node was finalized; a path is available.
	Found
	// Exhausted: the frontier emptied without reaching the end.
	Exhausted
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// Terminal reports whether no further Step can change the search.
func (s State) Terminal() bool {
	return s == Found || s == Exhausted
}

// StepResult reports what one Step did.
type StepResult struct {
	// Node is the cell finalized by this step; meaningful only if Finalized.
	Node gridgraph.Position
	// Finalized is false when the step popped nothing (exhaustion or restart).
	Finalized bool
	// State is the search state after the step.
	State State
	// Restarted is set when the step reset the search and reseeded the
	// frontier (A* corridor widening).
	Restarted bool
}

// Stepper is the contract a driver schedules: one Step per tick.
type Stepper interface {
	// Step performs one unit of work. After a terminal state it returns the
	// current state together with ErrTerminal.
	Step() (StepResult, error)
	// State returns the current state.
	State() State
	// Path returns the start→end positions once Found, ErrNotTerminal otherwise.
	Path() ([]gridgraph.Position, error)
	// Cost returns the finalized cost of the end once Found, ErrNotTerminal otherwise.
	Cost() (int, error)
}
