// Package gridgraph models a uniform 2D grid of cells as a graph for
// step-driven path searches.
//
// What:
//
//   - GridGraph owns a dense W×H table of Nodes indexed row-major (y*W + x).
//   - Every node has 0..4 outgoing unit-weight edges to its orthogonal
//     neighbors. Edges are built once by New and never change; only obstacle
//     flags do.
//   - Per-node search fields (Visited, Cost, Heuristic, Pred) are written only
//     by the search that holds the grid's Lease.
//   - Component analysis over passable cells and a 0-1 BFS "breach" query that
//     counts the obstacles separating two cells.
//
// Why:
//
//   - Visualizers need a pure grid state plus an external step function.
//   - Searches keep predecessors as node indices, so chains can never form
//     ownership cycles.
//
// Complexity:
//
//   - New:                 O(W×H) time and memory.
//   - ClearSearchState:    O(W×H).
//   - ConnectedComponents: O(W×H), Memory: O(W×H).
//   - MinBreach:           O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: non-positive width or height.
//   - ErrOutOfBounds: position outside [0,W)×[0,H).
//   - ErrAlreadyRunning: a search already holds the grid's lease.
//
// Concurrency:
//
//	GridGraph is not safe for concurrent use. Obstacles must not change while
//	a search is running; the driver is expected to refuse such commands.
package gridgraph
