// SPDX-License-Identifier: MIT
// Package: cobench/workload
//
// impl_cycle.go - distance matrix of the cycle C_n.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Arcs i → (i+1)%n in increasing i; mirrored with WithUndirected.
//   • One weight draw per arc, in emission order.
//
// Complexity: Time O(n²) (matrix init) + O(n) arcs.

package workload

import (
	"fmt"

	"github.com/katalvlaran/cobench/grid"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns the distance matrix of an n-vertex cycle.
func Cycle[E grid.Element](n int, opts ...Option) (*grid.Dense[E], error) {
	cfg := newConfig(opts...)
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}

	d, err := newDistance[E](methodCycle, n, cfg, false)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = d.addEdge(methodCycle, i, (i+1)%n); err != nil {
			return nil, err
		}
	}

	return d.m, nil
}
