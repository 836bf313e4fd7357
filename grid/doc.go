// Package grid provides the flat, row-major storage shared by every kernel
// in this module, plus the sub-block descriptor the recursive drivers use
// to address quadrants without copying.
//
// What grid offers:
//
//   - Dense[E]: an owned, square, contiguous buffer of side N (len == N²).
//     Public accessors (At/Set) are bounds-checked and return sentinel
//     errors; hot paths use Load/Store on flat indices.
//   - Block: a (Side, Row, Col) window into a Dense. It is a value type,
//     never materialized; Index(stride, i, j) maps local coordinates onto
//     the backing buffer as (Row+i)*stride + (Col+j).
//   - Observer: an optional per-matrix hook that sees every Load/Store at
//     base+idx, used by the cache simulator.
//
// Several Blocks may address the same Dense (Floyd–Warshall closure) or
// different ones (product, transpose); the index formula is identical.
//
// Integer arithmetic on Element values wraps silently on overflow.
//
// Usage:
//
//	m, err := grid.New[int32](4)
//	if err != nil { ... }
//	_ = m.Set(1, 2, 7)
//	q := grid.Whole(m.Side()).Quad(0, 1) // top-right 2×2 quadrant
//	v := m.Load(q.Index(m.Side(), 1, 0)) // == m.At(1, 2)
package grid
