// Package builder fills a gridgraph.GridGraph with obstacles using the
// functional-options constructor pattern.
//
// Constructors:
//
//   - Clear():              remove every obstacle.
//   - Maze():               randomized depth-first carve on the even sublattice;
//     every uncarved cell becomes an obstacle. The passable cells form a
//     perfect maze: connected, with exactly one route between any two cells.
//   - UniformObstacles(p):  every cell becomes an obstacle with probability p.
//   - ShapeObstacles():     scatter straight segments, L shapes and
//     three-armed stars over the existing board.
//
// Options:
//
//   - WithSeed / WithRand:   random source; stochastic constructors need one.
//   - WithShapeCount:        shapes per ShapeObstacles call (default 20).
//   - WithShapeLength:       segment and star arm length (default 5).
//   - WithLShapeLength:      L arm length (default 7).
//
// Guarantees:
//
//   - Determinism: the same grid size, options, seed and constructor order
//     produce the same board.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors wrapped with the constructor name.
//   - Constructors touch only obstacle flags; endpoints and search fields are
//     the caller's business.
//
// Example:
//
//	g, err := builder.BuildGrid(90, 40,
//	    []builder.BuilderOption{builder.WithSeed(42)},
//	    builder.Maze(),
//	)
package builder
