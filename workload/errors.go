// SPDX-License-Identifier: MIT
// Package: cobench/workload
//
// errors.go - sentinel errors for the workload package.
// Callers branch with errors.Is; constructors attach context with %w.
// Option constructors (WithX) panic on programmer error; generators never do.

package workload

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("workload: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("workload: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("workload: rng is required")

// ErrValueRange indicates a value (Inf, weight or range bound) the element
// type cannot represent.
var ErrValueRange = errors.New("workload: value does not fit element type")
