// SPDX-License-Identifier: MIT
// Package: kernel
//
// closure.go - in-place all-pairs shortest paths (Floyd–Warshall) in four
// loop structures.
//
// Contract:
//   - w is square; w[i][j] is the edge weight i→j, a large value ("infinity")
//     where there is no edge, and normally 0 on the diagonal.
//   - After the call w[i][j] is the shortest path length i→j.
//   - Only strict improvements are written (deterministic tie rule).
//   - No negative-cycle detection; with a negative cycle, variants may differ.
//   - "Infinity" must be small enough that inf+inf does not wrap.
//
// Complexity: Time O(n³), extra space O(1) (recursive: O(log n) stack).

package kernel

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cobench/grid"
	"github.com/katalvlaran/cobench/quad"
)

const opClosure = "Closure"

// Closure runs Floyd–Warshall in place on w using variant v.
// MAIN DESCRIPTION:
//   - Naive: k→i→j, every operand re-read.
//   - Transposed: k→i→j with the pivot row and w[i][k] hoisted.
//   - Recursive: quad.Closure over three views of w (A=(i,k), B=(k,j), C=(i,j)),
//     strictly sequential in quad.ClosureOrder unless WithOrder overrides it.
//   - Tiled: three-phase blocked Floyd–Warshall (pivot tile, pivot row and
//     column tiles, remaining tiles).
//
// Errors:
//   - grid.ErrNilMatrix, ErrInvalidArgument (unknown v), quad/grid errors
//     for the recursive variant, ctx.Err() on cancellation.
//
// Notes:
//   - WithWorkers has no effect: the eight sub-calls share one matrix and
//     must run in order.
func Closure[E grid.Element](ctx context.Context, v Variant, w *grid.Dense[E], opts ...Option) error {
	n, err := grid.ValidateSameSide(w)
	if err != nil {
		return fmt.Errorf("%s: %w", opClosure, err)
	}
	cfg := newConfig(opts...)

	switch v {
	case Naive:
		err = closureKIJ(ctx, w, n)
	case Transposed:
		err = closureRows(ctx, w, n)
	case Recursive:
		whole := grid.Whole(n)
		err = quad.Run(ctx, quad.Closure,
			quad.Operands{whole, whole, whole},
			func(ops quad.Operands) { MinPlusLeaf(w, w, w, ops[0], ops[1], ops[2]) },
			cfg.quad...,
		)
	case Tiled:
		err = closureTiled(ctx, w, n, min(cfg.tile, n))
	default:
		err = fmt.Errorf("variant %s: %w", v, ErrInvalidArgument)
	}
	if err != nil {
		return fmt.Errorf("%s(%s): %w", opClosure, v, err)
	}

	return nil
}

// closureKIJ is textbook Floyd–Warshall with no hoisting.
func closureKIJ[E grid.Element](ctx context.Context, w *grid.Dense[E], n int) error {
	var (
		k, i, j int
		idx     int
		cand    E
	)
	for k = 0; k < n; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				cand = w.Load(i*n+k) + w.Load(k*n+j)
				idx = i*n + j
				if cand < w.Load(idx) {
					w.Store(idx, cand)
				}
			}
		}
	}

	return nil
}

// closureRows keeps k outermost (the i-k-j interchange is not a correct
// shortest-path order) and streams rows: w[i][k] is read once per (k,i)
// and the pivot row offset once per k. Hoisting w[i][k] is exact because
// pass k can only change it through w[k][k] < 0, i.e. a negative cycle.
func closureRows[E grid.Element](ctx context.Context, w *grid.Dense[E], n int) error {
	var (
		k, i, j      int
		baseK, baseI int
		ik, cand     E
	)
	for k = 0; k < n; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		baseK = k * n
		for i = 0; i < n; i++ {
			baseI = i * n
			ik = w.Load(baseI + k)
			for j = 0; j < n; j++ {
				cand = ik + w.Load(baseK+j)
				if cand < w.Load(baseI+j) {
					w.Store(baseI+j, cand)
				}
			}
		}
	}

	return nil
}

// span is a rectangular index range [r0,r1) × [c0,c1).
type span struct{ r0, r1, c0, c1 int }

// relaxSpan relaxes the cells of dst through pivots [k0,k1), k outermost.
func relaxSpan[E grid.Element](w *grid.Dense[E], n int, dst span, k0, k1 int) {
	var (
		k, i, j int
		idx     int
		cand    E
	)
	for k = k0; k < k1; k++ {
		for i = dst.r0; i < dst.r1; i++ {
			for j = dst.c0; j < dst.c1; j++ {
				cand = w.Load(i*n+k) + w.Load(k*n+j)
				idx = i*n + j
				if cand < w.Load(idx) {
					w.Store(idx, cand)
				}
			}
		}
	}
}

// closureTiled is blocked Floyd–Warshall. For each pivot tile kb:
//   - phase 1: close the pivot tile (kb,kb) over its own pivots;
//   - phase 2: relax the pivot row tiles (kb,*) and column tiles (*,kb);
//   - phase 3: relax every remaining tile through the pivot tiles.
func closureTiled[E grid.Element](ctx context.Context, w *grid.Dense[E], n, tile int) error {
	var kb, ib, jb, kEnd, iEnd, jEnd int
	for kb = 0; kb < n; kb += tile {
		if err := ctx.Err(); err != nil {
			return err
		}
		kEnd = min(kb+tile, n)

		relaxSpan(w, n, span{kb, kEnd, kb, kEnd}, kb, kEnd)

		for jb = 0; jb < n; jb += tile {
			if jb == kb {
				continue
			}
			jEnd = min(jb+tile, n)
			relaxSpan(w, n, span{kb, kEnd, jb, jEnd}, kb, kEnd)
		}
		for ib = 0; ib < n; ib += tile {
			if ib == kb {
				continue
			}
			iEnd = min(ib+tile, n)
			relaxSpan(w, n, span{ib, iEnd, kb, kEnd}, kb, kEnd)
		}

		for ib = 0; ib < n; ib += tile {
			if ib == kb {
				continue
			}
			iEnd = min(ib+tile, n)
			for jb = 0; jb < n; jb += tile {
				if jb == kb {
					continue
				}
				jEnd = min(jb+tile, n)
				relaxSpan(w, n, span{ib, iEnd, jb, jEnd}, kb, kEnd)
			}
		}
	}

	return nil
}
