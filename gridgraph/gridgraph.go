package gridgraph

import "fmt"

// neighborOffsets lists the orthogonal moves in edge emission order: W, E, N, S.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// New builds a width×height grid with every node passable and its search
// fields reset. Edges to all in-bounds orthogonal neighbors are wired here
// once and are never modified afterwards.
// Returns ErrEmptyGrid if width or height is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, width, height)
	}
	gg := &GridGraph{
		Width:  width,
		Height: height,
		nodes:  make([]Node, width*height),
		edges:  make([][]Edge, width*height),
		start:  NoPred,
		end:    NoPred,
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := gg.index(x, y)
			out := make([]Edge, 0, len(neighborOffsets))
			for _, d := range neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				out = append(out, Edge{To: gg.index(nx, ny), Weight: EdgeWeight})
			}
			gg.edges[i] = out
		}
	}
	gg.ClearSearchState()

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Contains reports whether p lies within the grid boundaries.
func (gg *GridGraph) Contains(p Position) bool {
	return gg.InBounds(p.X, p.Y)
}

// Len returns the number of cells, W×H.
func (gg *GridGraph) Len() int {
	return len(gg.nodes)
}

// Index maps p to its row-major node index.
// Returns ErrOutOfBounds for positions outside the grid.
func (gg *GridGraph) Index(p Position) (int, error) {
	if !gg.Contains(p) {
		return 0, fmt.Errorf("%w: %v in %d×%d", ErrOutOfBounds, p, gg.Width, gg.Height)
	}
	return gg.index(p.X, p.Y), nil
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Position converts a row-major index back to a Position.
func (gg *GridGraph) Position(idx int) Position {
	x, y := gg.Coordinate(idx)
	return Position{X: x, Y: y}
}

// Ordinal returns the frontier tie-break value of the node at idx: x*Height + y.
// It is unique per cell, so (cost, Ordinal) is a total order.
func (gg *GridGraph) Ordinal(idx int) int {
	x, y := gg.Coordinate(idx)
	return x*gg.Height + y
}

// At returns the node stored at idx. The pointer stays valid for the life of
// the grid; only the search holding the lease may write its search fields.
// idx must be in [0, Len()).
func (gg *GridGraph) At(idx int) *Node {
	return &gg.nodes[idx]
}

// Node returns a copy of the node at p.
func (gg *GridGraph) Node(p Position) (Node, error) {
	i, err := gg.Index(p)
	if err != nil {
		return Node{}, err
	}
	return gg.nodes[i], nil
}

// Edges returns the outgoing edges of the node at idx. The slice is shared
// and must not be modified.
func (gg *GridGraph) Edges(idx int) []Edge {
	return gg.edges[idx]
}

// Neighbors returns the positions adjacent to p, obstacles included.
// Filtering impassable cells is up to the caller.
func (gg *GridGraph) Neighbors(p Position) ([]Position, error) {
	i, err := gg.Index(p)
	if err != nil {
		return nil, err
	}
	out := make([]Position, 0, len(gg.edges[i]))
	for _, e := range gg.edges[i] {
		out = append(out, gg.Position(e.To))
	}
	return out, nil
}

// SetObstacle marks or clears p as impassable.
// Must not be called while a search is running on the grid.
func (gg *GridGraph) SetObstacle(p Position, blocked bool) error {
	i, err := gg.Index(p)
	if err != nil {
		return err
	}
	gg.nodes[i].Obstacle = blocked
	return nil
}

// IsObstacle reports whether p is impassable.
func (gg *GridGraph) IsObstacle(p Position) (bool, error) {
	i, err := gg.Index(p)
	if err != nil {
		return false, err
	}
	return gg.nodes[i].Obstacle, nil
}

// ClearObstacles makes every cell passable.
func (gg *GridGraph) ClearObstacles() {
	for i := range gg.nodes {
		gg.nodes[i].Obstacle = false
	}
}

// ClearSearchState resets Visited, Cost, Heuristic and Pred on every node.
// Obstacle flags, endpoint designations and the lease are left untouched.
func (gg *GridGraph) ClearSearchState() {
	for i := range gg.nodes {
		n := &gg.nodes[i]
		n.Visited = false
		n.Cost = Infinity
		n.Heuristic = 0
		n.Pred = NoPred
	}
}

// ObstacleCount returns the number of impassable cells.
func (gg *GridGraph) ObstacleCount() int {
	count := 0
	for i := range gg.nodes {
		if gg.nodes[i].Obstacle {
			count++
		}
	}
	return count
}

// Density returns ObstacleCount()/Len().
func (gg *GridGraph) Density() float64 {
	return float64(gg.ObstacleCount()) / float64(len(gg.nodes))
}
