package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ValidateEndpoints checks that start and end lie on the grid and are not
// obstacles, and returns their node indices. start == end is allowed and
// yields a zero-length path.
func ValidateEndpoints(g *gridgraph.GridGraph, start, end gridgraph.Position) (int, int, error) {
	if g == nil {
		return 0, 0, fmt.Errorf("%w: nil grid", ErrInvalidEndpoints)
	}
	si, err := g.Index(start)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: start: %w", ErrInvalidEndpoints, err)
	}
	ei, err := g.Index(end)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: end: %w", ErrInvalidEndpoints, err)
	}
	if g.At(si).Obstacle {
		return 0, 0, fmt.Errorf("%w: start %v is an obstacle", ErrInvalidEndpoints, start)
	}
	if g.At(ei).Obstacle {
		return 0, 0, fmt.Errorf("%w: end %v is an obstacle", ErrInvalidEndpoints, end)
	}
	return si, ei, nil
}

// ReconstructPath follows predecessor indices from end back to start and
// returns the positions in start→end order. It stops at the first node
// without predecessor, so on an unreached end the result is just [end].
func ReconstructPath(g *gridgraph.GridGraph, start, end int) []gridgraph.Position {
	var path []gridgraph.Position
	at := end
	for {
		path = append(path, g.Position(at))
		if at == start {
			break
		}
		prev := g.At(at).Pred
		if prev == gridgraph.NoPred {
			break
		}
		at = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Drain steps s until it reaches a terminal state or limit steps were taken
// (limit <= 0 means no limit). Returns the last StepResult and the number of
// Step calls made. Errors from Step other than ErrTerminal are returned as is.
func Drain(s Stepper, limit int) (StepResult, int, error) {
	var last StepResult
	steps := 0
	for !s.State().Terminal() {
		if limit > 0 && steps >= limit {
			return last, steps, nil
		}
		res, err := s.Step()
		steps++
		if err != nil {
			return res, steps, err
		}
		last = res
	}
	if steps == 0 {
		last.State = s.State()
	}
	return last, steps, nil
}
