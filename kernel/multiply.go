// SPDX-License-Identifier: MIT
// Package: kernel
//
// multiply.go - C += A·B in four loop structures.
//
// Contract:
//   - a, b, c are non-nil and share side n; c is distinct from a and b
//     (a and b may be the same matrix).
//   - c is accumulated into, not overwritten: pass a zeroed c for C = A·B.
//   - Products and sums wrap on overflow.
//
// Complexity: Time O(n³), extra space O(1) (recursive: O(log n) stack).

package kernel

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cobench/grid"
	"github.com/katalvlaran/cobench/quad"
)

const opMultiply = "Multiply"

// Multiply accumulates a·b into c using variant v.
// The recursive variant forks across C-quadrants when WithWorkers(w>1) is set.
func Multiply[E grid.Element](ctx context.Context, v Variant, a, b, c *grid.Dense[E], opts ...Option) error {
	n, err := grid.ValidateSameSide(a, b, c)
	if err != nil {
		return fmt.Errorf("%s: %w", opMultiply, err)
	}
	if c == a || c == b {
		return fmt.Errorf("%s: %w", opMultiply, ErrAliasedOperands)
	}
	cfg := newConfig(opts...)

	switch v {
	case Naive:
		err = multiplyIJK(ctx, a, b, c, n)
	case Transposed:
		err = multiplyIKJ(ctx, a, b, c, n)
	case Recursive:
		w := grid.Whole(n)
		err = quad.Run(ctx, quad.Product,
			quad.Operands{w, w, w},
			func(ops quad.Operands) { MulAddLeaf(a, b, c, ops[0], ops[1], ops[2]) },
			cfg.quad...,
		)
	case Tiled:
		err = multiplyTiled(ctx, a, b, c, n, min(cfg.tile, n))
	default:
		err = fmt.Errorf("variant %s: %w", v, ErrInvalidArgument)
	}
	if err != nil {
		return fmt.Errorf("%s(%s): %w", opMultiply, v, err)
	}

	return nil
}

// multiplyIJK is the textbook order: B is walked down a column in the inner loop.
func multiplyIJK[E grid.Element](ctx context.Context, a, b, c *grid.Dense[E], n int) error {
	var i, j, k, idx int
	for i = 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j = 0; j < n; j++ {
			idx = i*n + j
			for k = 0; k < n; k++ {
				c.Store(idx, c.Load(idx)+a.Load(i*n+k)*b.Load(k*n+j))
			}
		}
	}

	return nil
}

// multiplyIKJ interchanges the two inner loops so B and C rows stream.
func multiplyIKJ[E grid.Element](ctx context.Context, a, b, c *grid.Dense[E], n int) error {
	var (
		i, k, j    int
		baseI, idx int
		aik        E
	)
	for i = 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		baseI = i * n
		for k = 0; k < n; k++ {
			aik = a.Load(baseI + k)
			for j = 0; j < n; j++ {
				idx = baseI + j
				c.Store(idx, c.Load(idx)+aik*b.Load(k*n+j))
			}
		}
	}

	return nil
}

// multiplyTiled blocks i, j and k by tile and runs i-k-j inside each
// tile triple. Partial edge tiles are handled with min bounds.
func multiplyTiled[E grid.Element](ctx context.Context, a, b, c *grid.Dense[E], n, tile int) error {
	var (
		ii, jj, kk       int
		iEnd, jEnd, kEnd int
		i, k, j, idx     int
		aik              E
	)
	for ii = 0; ii < n; ii += tile {
		if err := ctx.Err(); err != nil {
			return err
		}
		iEnd = min(ii+tile, n)
		for jj = 0; jj < n; jj += tile {
			jEnd = min(jj+tile, n)
			for kk = 0; kk < n; kk += tile {
				kEnd = min(kk+tile, n)
				for i = ii; i < iEnd; i++ {
					for k = kk; k < kEnd; k++ {
						aik = a.Load(i*n + k)
						for j = jj; j < jEnd; j++ {
							idx = i*n + j
							c.Store(idx, c.Load(idx)+aik*b.Load(k*n+j))
						}
					}
				}
			}
		}
	}

	return nil
}
