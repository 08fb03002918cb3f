// Package gridpath is an incremental shortest-path engine for 2-D grids:
// build a board, start a search, and advance it one step at a time so every
// expansion can be shown or inspected.
//
// What is in the box?
//
//	• A W×H lattice with 4-directional unit edges and obstacle cells
//	• Dijkstra as a steppable state machine
//	• A* with a Chebyshev heuristic, a corridor around the start→end line,
//	  automatic corridor widening and a density-triggered maze mode
//	• Seeded board generators: perfect mazes, uniform fill, scattered shapes
//	• A session layer with handles, logging, metrics and a ticker driver
//
// Determinism:
//
//   - Frontier ties break on x*height + y, so equal boards expand equally.
//   - Generators take a seed; equal seeds give equal boards.
//
// Layout:
//
//	gridgraph/   — the board: nodes, edges, obstacles, endpoints, search lease
//	search/      — states, step results, the indexed frontier, path helpers
//	dijkstra/    — uniform-cost search
//	astar/       — heuristic search with corridor restriction
//	builder/     — seeded obstacle constructors
//	session/     — command surface: runs by handle, config, logging, metrics
//	cmd/gridpath — CLI that generates a board, runs a search and prints it
//
// Quick ASCII example (S start, E end, # wall, * path):
//
//	S # . . .
//	* # . # .
//	* # . # E
//	* * * # *
//	. . * * *
//
//	go get github.com/katalvlaran/gridpath
package gridpath
