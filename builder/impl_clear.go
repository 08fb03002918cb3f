// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// impl_clear.go - implementation of the Clear() constructor.

package builder

import "github.com/katalvlaran/gridpath/gridgraph"

// Clear returns a Constructor that removes every obstacle.
// Complexity: O(W·H).
func Clear() Constructor {
	return func(g *gridgraph.GridGraph, _ builderConfig) error {
		g.ClearObstacles()
		return nil
	}
}
