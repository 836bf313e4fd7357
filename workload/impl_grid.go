// SPDX-License-Identifier: MIT
// Package: cobench/workload
//
// impl_grid.go - distance matrix of a rows×cols 4-neighbour lattice.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex (r,c) has index r*cols + c; matrix side is rows*cols.
//   • Always undirected: right and down neighbours are emitted per cell in
//     row-major order and mirrored.
//
// Complexity: Time O((rows·cols)²) (matrix init) + O(rows·cols) edges.

package workload

import (
	"fmt"

	"github.com/katalvlaran/cobench/grid"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid returns the distance matrix of a rows×cols lattice.
func Grid[E grid.Element](rows, cols int, opts ...Option) (*grid.Dense[E], error) {
	cfg := newConfig(opts...)
	if rows < minGridSide || cols < minGridSide {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w",
			methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
	}

	d, err := newDistance[E](methodGrid, rows*cols, cfg, true)
	if err != nil {
		return nil, err
	}
	var r, c, u int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			u = r*cols + c
			if c+1 < cols {
				if err = d.addEdge(methodGrid, u, u+1); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err = d.addEdge(methodGrid, u, u+cols); err != nil {
					return nil, err
				}
			}
		}
	}

	return d.m, nil
}
