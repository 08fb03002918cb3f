// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// impl_shapes.go - implementation of the ShapeObstacles() constructor.
//
// Canonical model:
//   • cfg.shapeCount shapes; each draws an anchor (x, y) with
//     x ∈ [0, W-shapeLength) and y ∈ [0, H-shapeLength) (one slot at least),
//     then a kind in {segment, L, star}:
//       segment – shapeLength cells rightwards or downwards (random).
//       L       – two lShapeLength arms from the anchor: right and down.
//       star    – three shapeLength arms from the anchor: right, down and
//                 diagonal down-right.
//   • Cells falling off the board are skipped.
//   • Existing obstacles are kept; combine with Clear() for a fresh board.
//
// Contract:
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Determinism:
//   • Per shape: anchor x, anchor y, kind, then orientation for segments.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const methodShapes = "ShapeObstacles"

type shapeKind int

const (
	shapeSegment shapeKind = iota
	shapeL
	shapeStar
	shapeKinds
)

// ShapeObstacles returns a Constructor that scatters obstacle shapes.
// Complexity: O(shapeCount · max(shapeLength, lShapeLength)).
func ShapeObstacles() Constructor {
	return func(g *gridgraph.GridGraph, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodShapes, ErrNeedRandSource)
		}

		block := func(x, y int) {
			if g.InBounds(x, y) {
				g.At(y*g.Width + x).Obstacle = true
			}
		}
		arm := func(x, y, dx, dy, n int) {
			for k := 0; k < n; k++ {
				block(x+k*dx, y+k*dy)
			}
		}

		for i := 0; i < cfg.shapeCount; i++ {
			x := cfg.rng.Intn(max(1, g.Width-cfg.shapeLength))
			y := cfg.rng.Intn(max(1, g.Height-cfg.shapeLength))

			switch shapeKind(cfg.rng.Intn(int(shapeKinds))) {
			case shapeSegment:
				if cfg.rng.Intn(2) == 0 {
					arm(x, y, 1, 0, cfg.shapeLength)
				} else {
					arm(x, y, 0, 1, cfg.shapeLength)
				}
			case shapeL:
				arm(x, y, 1, 0, cfg.lShapeLength)
				arm(x, y, 0, 1, cfg.lShapeLength)
			case shapeStar:
				arm(x, y, 1, 0, cfg.shapeLength)
				arm(x, y, 0, 1, cfg.shapeLength)
				arm(x, y, 1, 1, cfg.shapeLength)
			}
		}

		return nil
	}
}
