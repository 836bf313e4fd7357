// SPDX-License-Identifier: MIT
// Package kernel: sentinel error set. Callers match via errors.Is.

package kernel

import "errors"

var (
	// ErrInvalidArgument is returned for an empty or unrecognized variant selector.
	ErrInvalidArgument = errors.New("kernel: invalid argument")

	// ErrAliasedOperands is returned when an output matrix is also an input
	// of Transpose or Multiply.
	ErrAliasedOperands = errors.New("kernel: output aliases an input")
)
