// SPDX-License-Identifier: MIT
// Package: cobench/workload
//
// impl_random_sparse.go - Erdős–Rényi-like distance matrix.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   • Directed: ordered pairs (i,j), i≠j, row-major. WithUndirected: i<j, mirrored.
//   • Per pair: one Bernoulli trial, then one weight draw if kept.
//
// Determinism: fixed trial order ⇒ identical output for a fixed seed.

package workload

import (
	"fmt"

	"github.com/katalvlaran/cobench/grid"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a distance matrix where each admissible arc is
// present independently with probability p.
func RandomSparse[E grid.Element](n int, p float64, opts ...Option) (*grid.Dense[E], error) {
	cfg := newConfig(opts...)
	if n < minRandomSparseVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	d, err := newDistance[E](methodRandomSparse, n, cfg, false)
	if err != nil {
		return nil, err
	}
	if p == probMin {
		return d.m, nil
	}

	var keep bool
	for i := 0; i < n; i++ {
		j := 0
		if d.undirected {
			j = i + 1
		}
		for ; j < n; j++ {
			if i == j {
				continue
			}
			keep = p == probMax || cfg.rng.Float64() < p
			if !keep {
				continue
			}
			if err = d.addEdge(methodRandomSparse, i, j); err != nil {
				return nil, err
			}
		}
	}

	return d.m, nil
}
