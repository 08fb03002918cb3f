// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Apply(g, bopts, cons...). Resolves cfg once, runs cons in order.
//   - BuildGrid is Apply on a freshly created grid.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same grid size, options, seed and constructor order ⇒ identical boards.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Constructor applies a deterministic obstacle mutation to g using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters before touching g and return sentinel errors.
//   - Only change obstacle flags; search fields and endpoints are left alone.
//   - Draw random numbers in a fixed order so a seed reproduces the board.
type Constructor func(g *gridgraph.GridGraph, cfg builderConfig) error

// Apply resolves the builder configuration from bopts and runs every
// constructor against g in order. The first error is wrapped with
// "Apply: %w" and returned; constructors already applied are not undone.
//
// Errors:
//   - ErrConstructFailed for a nil grid or nil constructor.
//   - gridgraph.ErrAlreadyRunning while a search holds g.
//   - Any constructor sentinel (ErrNeedRandSource, ErrInvalidProbability).
func Apply(g *gridgraph.GridGraph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil grid: %w", ErrConstructFailed)
	}
	if g.Running() {
		return fmt.Errorf("Apply: %w", gridgraph.ErrAlreadyRunning)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// BuildGrid creates a width×height grid and applies cons to it.
// Grid creation errors (gridgraph.ErrEmptyGrid) are wrapped with "BuildGrid: %w".
func BuildGrid(width, height int, bopts []BuilderOption, cons ...Constructor) (*gridgraph.GridGraph, error) {
	g, err := gridgraph.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("BuildGrid: %w", err)
	}
	if err = Apply(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildGrid: %w", err)
	}

	return g, nil
}
