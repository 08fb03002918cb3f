// Package dijkstra implements an incremental uniform-cost search over a
// gridgraph.GridGraph.
//
// Overview:
//
//   - The search is a state machine (Idle → Running → Found | Exhausted)
//     driven one Step at a time by an external scheduler, so every
//     expansion can be rendered or inspected.
//   - The frontier is keyed by (cost, x*height + y). The second component is
//     a per-cell unique tie-break, which makes expansion order a total order:
//     identical boards always expand identically.
//   - Relaxation follows the classic rule: a non-obstacle, non-visited
//     neighbor whose candidate cost (cost + 1) is strictly lower gets its
//     cost, its predecessor and its frontier entry replaced.
//
// Correctness:
//
//	All edges weigh 1 and the frontier pops in non-decreasing cost order, so
//	the first time the end node is popped its cost is the shortest-path
//	length. Finalized nodes are never re-expanded.
//
// Complexity:
//
//   - Start: O(W·H) to clear search state.
//   - Step:  O(log(W·H)): one pop plus at most four re-keys.
//   - Whole run: O(W·H · log(W·H)) time, O(W·H) memory.
//
// Errors (sentinel, see package search):
//
//   - search.ErrInvalidEndpoints  start or end out of bounds or blocked.
//   - gridgraph.ErrAlreadyRunning another search holds the grid.
//   - search.ErrTerminal          Step after Found/Exhausted.
//   - search.ErrIdle              Step before Start.
//   - search.ErrAborted           the grid was reset under the search.
//   - search.ErrNotTerminal       Path/Cost before Found.
//
// Example usage:
//
//	s := dijkstra.New(g)
//	if err := s.Start(start, end); err != nil {
//	    log.Fatal(err)
//	}
//	for !s.State().Terminal() {
//	    res, _ := s.Step()
//	    draw(res.Node)
//	}
//	path, _ := s.Path()
package dijkstra
