// SPDX-License-Identifier: MIT
// Package: kernel
//
// transpose.go - dst = srcᵀ in four loop structures.
//
// Contract:
//   - src and dst are distinct, non-nil and share side n.
//   - dst is fully overwritten; src is only read.
//   - Recursive requires n to be a power of two.
//
// Complexity: Time O(n²), extra space O(1) (recursive: O(log n) stack).

package kernel

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cobench/grid"
	"github.com/katalvlaran/cobench/quad"
)

const opTranspose = "Transpose"

// Transpose writes the transpose of src into dst using variant v.
// Errors: grid.ErrNilMatrix, grid.ErrDimensionMismatch, ErrAliasedOperands,
// ErrInvalidArgument (unknown v), quad/grid errors for the recursive variant,
// ctx.Err() on cancellation.
func Transpose[E grid.Element](ctx context.Context, v Variant, src, dst *grid.Dense[E], opts ...Option) error {
	n, err := grid.ValidateSameSide(src, dst)
	if err != nil {
		return fmt.Errorf("%s: %w", opTranspose, err)
	}
	if src == dst {
		return fmt.Errorf("%s: %w", opTranspose, ErrAliasedOperands)
	}
	cfg := newConfig(opts...)

	switch v {
	case Naive:
		err = transposeRows(ctx, src, dst, n)
	case Transposed:
		err = transposeCols(ctx, src, dst, n)
	case Recursive:
		err = quad.Run(ctx, quad.Pairing,
			quad.Operands{grid.Whole(n), grid.Whole(n)},
			func(ops quad.Operands) { TransposeLeaf(src, dst, ops[0], ops[1]) },
			cfg.quad...,
		)
	case Tiled:
		err = transposeTiled(ctx, src, dst, n, min(cfg.tile, n))
	default:
		err = fmt.Errorf("variant %s: %w", v, ErrInvalidArgument)
	}
	if err != nil {
		return fmt.Errorf("%s(%s): %w", opTranspose, v, err)
	}

	return nil
}

// transposeRows reads src row by row: dst[j][i] = src[i][j], i outer.
// Reads are contiguous, writes stride by n.
func transposeRows[E grid.Element](ctx context.Context, src, dst *grid.Dense[E], n int) error {
	var i, j int
	for i = 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j = 0; j < n; j++ {
			dst.Store(j*n+i, src.Load(i*n+j))
		}
	}

	return nil
}

// transposeCols fills dst row by row: dst[j][i] = src[i][j], j outer.
// Writes are contiguous, reads stride by n.
func transposeCols[E grid.Element](ctx context.Context, src, dst *grid.Dense[E], n int) error {
	var i, j int
	for j = 0; j < n; j++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i = 0; i < n; i++ {
			dst.Store(j*n+i, src.Load(i*n+j))
		}
	}

	return nil
}

// transposeTiled walks tile × tile source windows; the last tile in a row
// or column may be partial when tile does not divide n.
func transposeTiled[E grid.Element](ctx context.Context, src, dst *grid.Dense[E], n, tile int) error {
	var ii, jj, i, j, iEnd, jEnd int
	for ii = 0; ii < n; ii += tile {
		if err := ctx.Err(); err != nil {
			return err
		}
		iEnd = min(ii+tile, n)
		for jj = 0; jj < n; jj += tile {
			jEnd = min(jj+tile, n)
			for i = ii; i < iEnd; i++ {
				for j = jj; j < jEnd; j++ {
					dst.Store(j*n+i, src.Load(i*n+j))
				}
			}
		}
	}

	return nil
}
