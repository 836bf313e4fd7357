// SPDX-License-Identifier: MIT
// Package: cobench/workload
//
// impl_complete.go - distance matrix of the complete digraph K_n.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Directed: every ordered pair (i,j), i≠j, in row-major order.
//   • WithUndirected: unordered pairs i<j, one draw each, mirrored.

package workload

import (
	"fmt"

	"github.com/katalvlaran/cobench/grid"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns the distance matrix with an arc between every pair.
func Complete[E grid.Element](n int, opts ...Option) (*grid.Dense[E], error) {
	cfg := newConfig(opts...)
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}

	d, err := newDistance[E](methodComplete, n, cfg, false)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		j := 0
		if d.undirected {
			j = i + 1
		}
		for ; j < n; j++ {
			if i == j {
				continue
			}
			if err = d.addEdge(methodComplete, i, j); err != nil {
				return nil, err
			}
		}
	}

	return d.m, nil
}
