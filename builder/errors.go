// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with `%w`.
//   • Constructors MUST NOT panic; validation panics are confined to
//     option constructors (WithX...).

package builder

import "errors"

// ErrInvalidProbability indicates a density outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error at the Apply boundary
// (nil grid, nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
