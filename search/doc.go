// Package search holds the vocabulary shared by the step-driven grid
// searches (dijkstra, astar): the State machine, the StepResult returned by
// every tick, the Stepper contract a driver schedules, endpoint validation,
// path reconstruction and the Frontier priority queue.
//
// A Stepper performs one bounded unit of work per Step call: one frontier pop
// and the relaxation of at most four neighbors. It never blocks and starts no
// goroutines; cancelling a search means no longer calling Step.
//
// State machine:
//
//	Idle ──Start──▶ Running ──Step──▶ Found
//	                   │
//	                   └──────Step──▶ Exhausted
//
// Errors (sentinel):
//
//   - ErrInvalidEndpoints: start or end is out of bounds or an obstacle.
//   - ErrNotTerminal:      a path was requested before the search found one.
//   - ErrTerminal:         Step called after Found or Exhausted.
//   - ErrIdle:             Step called before Start.
//   - ErrAborted:          the grid was reset under a running search.
package search
