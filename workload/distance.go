// SPDX-License-Identifier: MIT
// Package: cobench/workload
//
// distance.go - shared plumbing for the distance-matrix generators.
//
// Contract:
//   • Fresh matrix: 0 on the diagonal, Inf everywhere else.
//   • setEdge keeps the smaller weight when an arc is emitted twice and
//     mirrors it when the config (or the family) is undirected.
//   • Values are range-checked against E once, before any allocation.

package workload

import (
	"fmt"

	"github.com/katalvlaran/cobench/grid"
)

// fits reports whether v survives a round trip through E.
func fits[E grid.Element](v int64) bool {
	return int64(E(v)) == v
}

// distanceMatrix is the in-progress output of a graph-family generator.
type distanceMatrix[E grid.Element] struct {
	m          *grid.Dense[E]
	n          int
	cfg        config
	undirected bool
}

// newDistance allocates an n×n matrix with 0 on the diagonal and cfg.inf
// elsewhere. method tags errors.
func newDistance[E grid.Element](method string, n int, cfg config, undirected bool) (*distanceMatrix[E], error) {
	if !fits[E](cfg.inf) {
		return nil, fmt.Errorf("%s: inf=%d: %w", method, cfg.inf, ErrValueRange)
	}
	m, err := grid.New[E](n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	data := m.Data()
	inf := E(cfg.inf)
	for i := range data {
		data[i] = inf
	}
	for i := 0; i < n; i++ {
		data[i*n+i] = 0
	}

	return &distanceMatrix[E]{m: m, n: n, cfg: cfg, undirected: undirected || cfg.undirected}, nil
}

// weight draws the next weight and rejects values E cannot hold.
func (d *distanceMatrix[E]) weight(method string) (E, error) {
	w := d.cfg.weightFn(d.cfg.rng)
	if !fits[E](w) {
		return 0, fmt.Errorf("%s: weight=%d: %w", method, w, ErrValueRange)
	}

	return E(w), nil
}

// setEdge records arc i→j (and j→i when undirected), keeping the minimum.
// Self-loops never raise the diagonal above its current value.
func (d *distanceMatrix[E]) setEdge(i, j int, w E) {
	data := d.m.Data()
	if idx := i*d.n + j; w < data[idx] {
		data[idx] = w
	}
	if d.undirected {
		if idx := j*d.n + i; w < data[idx] {
			data[idx] = w
		}
	}
}

// addEdge draws a weight and records i→j.
func (d *distanceMatrix[E]) addEdge(method string, i, j int) error {
	w, err := d.weight(method)
	if err != nil {
		return err
	}
	d.setEdge(i, j, w)

	return nil
}
