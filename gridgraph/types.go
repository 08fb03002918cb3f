package gridgraph

import (
	"fmt"
	"math"
)

// Infinity is the initial Cost of every node before a search reaches it.
const Infinity = math.MaxInt

// NoPred marks a node without predecessor.
const NoPred = -1

// EdgeWeight is the fixed cost of every move between orthogonal neighbors.
const EdgeWeight = 1

// Position is a cell coordinate. X grows to the right, Y grows downwards.
type Position struct {
	X, Y int
}

// String renders the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Node holds the obstacle flag and the per-run search fields of one cell.
// Nodes never own other nodes; Pred is the index of the predecessor node
// in the owning GridGraph, or NoPred.
type Node struct {
	Obstacle  bool // impassable cell
	Visited   bool // finalized by the running search
	Cost      int  // best known cost from the start (G); Infinity if unreached
	Heuristic int  // estimated cost to the end; 0 unless a heuristic search set it
	Pred      int  // predecessor index on the best known route
}

// Edge is a directed unit-weight link to the node at index To.
type Edge struct {
	To     int
	Weight int
}

// Lease identifies the search run that currently owns the search fields.
// The zero Lease is never handed out.
type Lease uint64

// GridGraph is a W×H lattice of Nodes with immutable 4-directional edges.
// Width and Height are fixed at construction.
type GridGraph struct {
	Width, Height int

	nodes []Node   // dense, index = y*Width + x
	edges [][]Edge // built once by New

	start, end   int // designated endpoints; NoPred when unset
	lease        Lease
	leaseCounter uint64
}
