// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng          = nil  (stochastic constructors fail with ErrNeedRandSource)
//   • shapeCount   = 20
//   • shapeLength  = 5
//   • lShapeLength = 7

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// ShapeObstacles controls.
	shapeCount   int // shapes placed per call
	shapeLength  int // straight segment and star arm length; also the anchor margin
	lShapeLength int // arm length of the L shape
}

// Deterministic defaults (named, no magic numbers).
const (
	DefaultShapeCount   = 20
	DefaultShapeLength  = 5
	DefaultLShapeLength = 7
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		shapeCount:   DefaultShapeCount,
		shapeLength:  DefaultShapeLength,
		lShapeLength: DefaultLShapeLength,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
