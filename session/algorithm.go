package session

import (
	"fmt"
	"strings"
)

// Algorithm selects the search engine of a run.
type Algorithm int

const (
	Dijkstra Algorithm = iota
	AStar
)

// String returns "dijkstra" or "astar"; it is also the metric label value.
func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// ParseAlgorithm accepts "dijkstra", "astar" and "a*", case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*":
		return AStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}
