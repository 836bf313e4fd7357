// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every algorithm returns these sentinels (optionally wrapped with %w);
// tests match them via errors.Is. Nothing here panics on user input.

package grid

import "errors"

var (
	// ErrBadSide is returned when a requested side length is not positive.
	ErrBadSide = errors.New("grid: side must be > 0")

	// ErrOutOfRange indicates a (row, col) pair or a Block outside the matrix.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrDimensionMismatch indicates operands or buffers of incompatible size.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrNotPowerOfTwo signals a side that recursive halving cannot split exactly.
	ErrNotPowerOfTwo = errors.New("grid: side is not a power of two")

	// ErrBadThreshold signals a base-case threshold that is < 1, not a power
	// of two, or larger than the matrix side.
	ErrBadThreshold = errors.New("grid: invalid base-case threshold")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("grid: nil matrix")
)
