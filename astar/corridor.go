package astar

import (
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Heuristic returns the Chebyshev distance max(|dx|, |dy|) between a and b.
func Heuristic(a, b gridgraph.Position) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// SegmentDistance returns the Euclidean distance from p to the segment a–b.
// The projection parameter is clamped to [0, 1]; a degenerate segment
// (a == b) yields the distance from p to a.
func SegmentDistance(p, a, b gridgraph.Position) float64 {
	px, py := float64(p.X), float64(p.Y)
	ax, ay := float64(a.X), float64(a.Y)
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)

	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-ax, py-ay)
	}
	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))

	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}

// InCorridor reports whether p lies within width of the segment start–end.
func InCorridor(p, start, end gridgraph.Position, width int) bool {
	return SegmentDistance(p, start, end) <= float64(width)
}
