// SPDX-License-Identifier: MIT
// Package: kernel
//
// Purpose:
//   - Base-case kernels applied once the recursion reaches a small block.
//   - Each is a direct loop nest over square sub-blocks addressed through
//     grid.Block.Index on the operands' shared stride (the full side).
//
// Contract:
//   - Blocks have equal Side and lie inside their matrices (callers validate).
//   - Matrices share one side; for MinPlusLeaf they may be the same matrix.

package kernel

import (
	"github.com/katalvlaran/cobench/grid"
)

// TransposeLeaf copies the transpose of src block sb into dst block db:
// dst(db, i, j) = src(sb, j, i) for 0 ≤ i, j < Side.
// Complexity: O(Side²).
func TransposeLeaf[E grid.Element](src, dst *grid.Dense[E], sb, db grid.Block) {
	n := src.Side()
	var i, j int
	for i = 0; i < db.Side; i++ {
		for j = 0; j < db.Side; j++ {
			dst.Store(db.Index(n, i, j), src.Load(sb.Index(n, j, i)))
		}
	}
}

// MulAddLeaf accumulates the block product into c: C[i][j] += A[i][k]·B[k][j]
// over 0 ≤ i, j, k < Side, in i-k-j order (B and C rows stream).
// Complexity: O(Side³).
func MulAddLeaf[E grid.Element](a, b, c *grid.Dense[E], ab, bb, cb grid.Block) {
	n := a.Side()
	s := cb.Side
	var (
		i, k, j int
		aik     E
		idx     int
	)
	for i = 0; i < s; i++ {
		for k = 0; k < s; k++ {
			aik = a.Load(ab.Index(n, i, k))
			for j = 0; j < s; j++ {
				idx = cb.Index(n, i, j)
				c.Store(idx, c.Load(idx)+aik*b.Load(bb.Index(n, k, j)))
			}
		}
	}
}

// MinPlusLeaf relaxes c through a and b: C[i][j] = min(C[i][j], A[i][k]+B[k][j])
// with k outermost, so that every k-step sees the previous step's writes
// when the operands alias one matrix. A[i][k] is re-read per j because it
// may itself be a cell of C. Only strict improvements are stored.
// Complexity: O(Side³).
func MinPlusLeaf[E grid.Element](a, b, c *grid.Dense[E], ab, bb, cb grid.Block) {
	n := c.Side()
	s := cb.Side
	var (
		k, i, j int
		idx     int
		cand    E
	)
	for k = 0; k < s; k++ {
		for i = 0; i < s; i++ {
			for j = 0; j < s; j++ {
				cand = a.Load(ab.Index(n, i, k)) + b.Load(bb.Index(n, k, j))
				idx = cb.Index(n, i, j)
				if cand < c.Load(idx) {
					c.Store(idx, cand)
				}
			}
		}
	}
}
