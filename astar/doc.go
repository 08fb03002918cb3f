// Package astar implements an incremental heuristic search over a
// gridgraph.GridGraph with an adaptive corridor restriction.
//
// Overview:
//
//   - Like package dijkstra, the search is a state machine
//     (Idle → Running → Found | Exhausted) advanced one Step at a time.
//   - The frontier is keyed by (F = G + H, x*height + y), where G is the
//     cost so far and H = max(|dx|, |dy|) is the Chebyshev distance to
//     the end.
//   - Corridor: unless maze mode is on, a neighbor is only relaxed when its
//     Euclidean distance to the start→end segment is at most the corridor
//     width. The segment projection is clamped to [0, 1]; for start == end
//     the distance to the start is used.
//   - Widening: when the frontier empties outside maze mode and the width is
//     below the maximum (10 by default), the step clears the search state,
//     widens the corridor by one and reseeds the frontier. That step
//     finalizes nothing and reports Restarted. Otherwise the search is
//     Exhausted.
//   - Maze mode is decided on every Start: obstacle density strictly above
//     the threshold (0.3 by default) turns the corridor off.
//
// Optimality:
//
//	With 4-directional unit moves the Chebyshev distance never exceeds the
//	true remaining cost, and it changes by at most one per move, so without
//	a corridor the first pop of the end node is optimal. The corridor can
//	still cut off every shortest path while leaving a longer one inside the
//	band; such a run returns that longer path. Widening only happens on
//	exhaustion, so it does not repair this case.
//
// Complexity:
//
//   - Start: O(W·H) to clear search state.
//   - Step:  O(log(W·H)), or O(W·H) on a widening step.
//   - Whole run: O(k · W·H · log(W·H)) for k corridor widths tried.
//
// Errors:
//
//   - ErrBadCorridorWidth         negative corridor width.
//   - search.ErrInvalidEndpoints  start or end out of bounds or blocked.
//   - gridgraph.ErrAlreadyRunning another search holds the grid.
//   - search.ErrTerminal, search.ErrIdle, search.ErrAborted, search.ErrNotTerminal
//     as in package dijkstra.
package astar
