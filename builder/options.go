// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig before
// any constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithShapeCount sets how many shapes ShapeObstacles places. Panics if n < 0.
func WithShapeCount(n int) BuilderOption {
	if n < 0 {
		panic("builder: WithShapeCount(n<0)")
	}
	return func(c *builderConfig) {
		c.shapeCount = n
	}
}

// WithShapeLength sets the straight segment length. Panics if n < 1.
func WithShapeLength(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithShapeLength(n<1)")
	}
	return func(c *builderConfig) {
		c.shapeLength = n
	}
}

// WithLShapeLength sets the arm length of L shapes. Panics if n < 1.
func WithLShapeLength(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithLShapeLength(n<1)")
	}
	return func(c *builderConfig) {
		c.lShapeLength = n
	}
}
