// SPDX-License-Identifier: MIT

// Package grid - sub-block descriptor (no-copy square window).
//
// Purpose:
//   - Describe a square region of an N×N row-major matrix by side and offset.
//   - Provide the exact index formula (Row+i)*stride + (Col+j) used by every kernel.
//   - Split a region into quadrants for the recursive drivers.
//
// Complexity quicksheet:
//   - Whole/Quad/Index: O(1), no allocation (Block is a small value type).

package grid

import "fmt"

// Block is a square window {Side, Row, Col} into a matrix of some stride.
// The window covers rows [Row, Row+Side) and columns [Col, Col+Side).
type Block struct {
	Side int // side length of the window
	Row  int // top-left row offset in the backing matrix
	Col  int // top-left column offset in the backing matrix
}

// Whole returns the block covering an entire n×n matrix.
func Whole(n int) Block {
	return Block{Side: n}
}

// Quad returns quadrant (r, c) of b, where r, c ∈ {0, 1}: (0,0) top-left,
// (0,1) top-right, (1,0) bottom-left, (1,1) bottom-right. The child side
// is Side/2 and its offsets add r*Side/2 and c*Side/2 to the parent's.
// Callers guarantee Side is even; an odd side truncates.
func (b Block) Quad(r, c int) Block {
	h := b.Side >> 1

	return Block{
		Side: h,
		Row:  b.Row + r*h,
		Col:  b.Col + c*h,
	}
}

// Index maps local coordinates (i, j), 0 ≤ i, j < Side, onto the flat
// offset of a row-major buffer with the given stride (the full matrix side).
// No bounds check: callers validate the block once with ValidateBlock.
func (b Block) Index(stride, i, j int) int {
	return (b.Row+i)*stride + (b.Col + j)
}

// Within reports whether b lies entirely inside an n×n matrix.
func (b Block) Within(n int) bool {
	return b.Side > 0 &&
		b.Row >= 0 && b.Col >= 0 &&
		b.Row+b.Side <= n && b.Col+b.Side <= n
}

// String renders b as "side@(row,col)" for diagnostics.
func (b Block) String() string {
	return fmt.Sprintf("%d@(%d,%d)", b.Side, b.Row, b.Col)
}
