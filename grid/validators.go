// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//  - Provide a single, canonical source of truth for entry validation.
//  - Kernels validate once here and then index without further checks.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package grid

import (
	"fmt"
	"math/bits"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// ValidatePowerOfTwo ensures n is a positive power of two, so that repeated
// halving always lands on an exact base case.
// Errors: ErrBadSide for n ≤ 0, ErrNotPowerOfTwo otherwise.
func ValidatePowerOfTwo(n int) error {
	if n <= 0 {
		return validatorErrorf("ValidatePowerOfTwo", ErrBadSide)
	}
	if !IsPowerOfTwo(n) {
		return validatorErrorf(fmt.Sprintf("ValidatePowerOfTwo(%d)", n), ErrNotPowerOfTwo)
	}

	return nil
}

// ValidateThreshold ensures 1 ≤ t ≤ n and t is a power of two.
// Assumes n was validated by ValidatePowerOfTwo.
func ValidateThreshold(n, t int) error {
	if t < 1 || t > n || !IsPowerOfTwo(t) {
		return validatorErrorf(fmt.Sprintf("ValidateThreshold(n=%d,t=%d)", n, t), ErrBadThreshold)
	}

	return nil
}

// ValidateBlock ensures b lies inside an n×n matrix.
func ValidateBlock(n int, b Block) error {
	if !b.Within(n) {
		return validatorErrorf(fmt.Sprintf("ValidateBlock(%s in %d)", b, n), ErrOutOfRange)
	}

	return nil
}

// ValidateSameSide ensures every matrix is non-nil and shares one side.
// Returns the common side on success.
func ValidateSameSide[E Element](ms ...*Dense[E]) (int, error) {
	n := 0
	for i, m := range ms {
		if m == nil {
			return 0, validatorErrorf(fmt.Sprintf("ValidateSameSide: operand %d", i), ErrNilMatrix)
		}
		if i == 0 {
			n = m.n
			continue
		}
		if m.n != n {
			return 0, validatorErrorf(fmt.Sprintf("ValidateSameSide: operand %d side %d != %d", i, m.n, n), ErrDimensionMismatch)
		}
	}

	return n, nil
}

// Log2 returns floor(log2(n)) for n > 0 and -1 otherwise.
func Log2(n int) int {
	if n <= 0 {
		return -1
	}

	return bits.Len(uint(n)) - 1
}
