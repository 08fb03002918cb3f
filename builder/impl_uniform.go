// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// impl_uniform.go - implementation of UniformObstacles(p).
//
// Contract:
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   • Every cell is overwritten: obstacle with probability p, free otherwise.
//
// Determinism:
//   • One Float64 draw per cell in index order (row-major).

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

const (
	methodUniform = "UniformObstacles"
	probMin       = 0.0
	probMax       = 1.0
)

// UniformObstacles returns a Constructor that makes every cell an obstacle
// independently with probability p.
// Complexity: O(W·H).
func UniformObstacles(p float64) Constructor {
	return func(g *gridgraph.GridGraph, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodUniform, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodUniform, ErrNeedRandSource)
		}

		for i := 0; i < g.Len(); i++ {
			switch p {
			case probMin:
				g.At(i).Obstacle = false
			case probMax:
				g.At(i).Obstacle = true
			default:
				g.At(i).Obstacle = cfg.rng.Float64() < p
			}
		}

		return nil
	}
}
