// SPDX-License-Identifier: MIT
// Package quad: sentinel error set. Callers match via errors.Is.

package quad

import "errors"

var (
	// ErrUnknownSchedule is returned for a Schedule outside Pairing/Product/Closure.
	ErrUnknownSchedule = errors.New("quad: unknown schedule")

	// ErrBadOrder is returned when an Order does not visit each (i,j,k) exactly once,
	// or when a Closure order runs a k=1 step before a k=0 step.
	ErrBadOrder = errors.New("quad: invalid step order")

	// ErrSideMismatch is returned when operand blocks differ in side.
	ErrSideMismatch = errors.New("quad: operand sides differ")

	// ErrNilLeaf is returned when no base-case kernel was supplied.
	ErrNilLeaf = errors.New("quad: nil leaf kernel")
)
