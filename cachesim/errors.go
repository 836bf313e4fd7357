// SPDX-License-Identifier: MIT
// Package cachesim: sentinel errors.

package cachesim

import "errors"

var (
	// ErrBadGeometry is returned for sizes that are not powers of two, a
	// line larger than the cache, or a way count that does not divide the
	// number of lines.
	ErrBadGeometry = errors.New("cachesim: invalid cache geometry")

	// ErrUnknownPolicy is returned for an unrecognized replacement policy.
	ErrUnknownPolicy = errors.New("cachesim: unknown replacement policy")
)
