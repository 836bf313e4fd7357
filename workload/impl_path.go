// SPDX-License-Identifier: MIT
// Package: cobench/workload
//
// impl_path.go - distance matrix of the path P_n.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Arcs i → i+1 for i = 0..n-2; mirrored with WithUndirected.

package workload

import (
	"fmt"

	"github.com/katalvlaran/cobench/grid"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns the distance matrix of an n-vertex path.
func Path[E grid.Element](n int, opts ...Option) (*grid.Dense[E], error) {
	cfg := newConfig(opts...)
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}

	d, err := newDistance[E](methodPath, n, cfg, false)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < n; i++ {
		if err = d.addEdge(methodPath, i, i+1); err != nil {
			return nil, err
		}
	}

	return d.m, nil
}
