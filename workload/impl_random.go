// SPDX-License-Identifier: MIT
// Package: cobench/workload
//
// impl_random.go - dense uniform random matrices for multiply and transpose.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Values uniform in [lo, hi], drawn in row-major order.
//   • lo and hi must fit E (else ErrValueRange).

package workload

import (
	"fmt"

	"github.com/katalvlaran/cobench/grid"
)

const (
	methodRandom = "Random"
	minRandomN   = 1
)

// Random returns an n×n matrix of uniform integers in the configured range.
func Random[E grid.Element](n int, opts ...Option) (*grid.Dense[E], error) {
	cfg := newConfig(opts...)
	if n < minRandomN {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minRandomN, ErrTooFewVertices)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}
	if !fits[E](cfg.lo) || !fits[E](cfg.hi) {
		return nil, fmt.Errorf("%s: range [%d,%d]: %w", methodRandom, cfg.lo, cfg.hi, ErrValueRange)
	}

	m, err := grid.New[E](n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, err)
	}
	draw := UniformWeight(cfg.lo, cfg.hi)
	data := m.Data()
	for i := range data {
		data[i] = E(draw(cfg.rng))
	}

	return m, nil
}
