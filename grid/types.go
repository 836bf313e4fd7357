// SPDX-License-Identifier: MIT

// Package grid: element constraint and the access observer contract.
package grid

// Element is the set of signed integer types a Dense may hold.
// Sums and products wrap on overflow; nothing checks for it.
type Element interface {
	~int | ~int32 | ~int64
}

// Observer receives every Load/Store issued on a matrix it is attached to.
// addr is the matrix base address plus the flat element index; write is
// true for stores. Implementations shared across goroutines must
// synchronize internally.
type Observer interface {
	Observe(addr int, write bool)
}
