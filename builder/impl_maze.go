// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// impl_maze.go - implementation of the Maze() constructor.
//
// Canonical model:
//   • Cells with both coordinates even are maze rooms; the odd cell between
//     two rooms two apart is a passage.
//   • Randomized depth-first search from a random room: look at the top of
//     the stack, collect its unvisited rooms (W, E, N, S order), pick one at
//     random, carve it and the passage, push it; pop when none is left.
//   • Every cell that was never carved becomes an obstacle.
//
// Contract:
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Works for any grid size, 1×1 included.
//
// Complexity:
//   • Time: O(W·H).
//   • Space: O(W·H/4) for the stack.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const (
	methodMaze = "Maze"
	roomStride = 2 // distance between neighboring rooms
)

// Maze returns a Constructor that replaces the board with a perfect maze.
func Maze() Constructor {
	return func(g *gridgraph.GridGraph, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodMaze, ErrNeedRandSource)
		}

		w, h := g.Width, g.Height
		for i := 0; i < g.Len(); i++ {
			g.At(i).Obstacle = true
		}

		open := func(x, y int) {
			g.At(y*w + x).Obstacle = false
		}
		carved := func(x, y int) bool {
			return !g.At(y*w + x).Obstacle
		}

		sx := cfg.rng.Intn(max(1, w/roomStride)) * roomStride
		sy := cfg.rng.Intn(max(1, h/roomStride)) * roomStride
		open(sx, sy)

		stack := []gridgraph.Position{{X: sx, Y: sy}}
		candidates := make([]gridgraph.Position, 0, 4)

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			x, y := top.X, top.Y

			candidates = candidates[:0]
			if x > 1 && !carved(x-roomStride, y) {
				candidates = append(candidates, gridgraph.Position{X: x - roomStride, Y: y})
			}
			if x < w-roomStride && !carved(x+roomStride, y) {
				candidates = append(candidates, gridgraph.Position{X: x + roomStride, Y: y})
			}
			if y > 1 && !carved(x, y-roomStride) {
				candidates = append(candidates, gridgraph.Position{X: x, Y: y - roomStride})
			}
			if y < h-roomStride && !carved(x, y+roomStride) {
				candidates = append(candidates, gridgraph.Position{X: x, Y: y + roomStride})
			}

			if len(candidates) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}

			next := candidates[cfg.rng.Intn(len(candidates))]
			open((x+next.X)/2, (y+next.Y)/2)
			open(next.X, next.Y)
			stack = append(stack, next)
		}

		return nil
	}
}
