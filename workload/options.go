// SPDX-License-Identifier: MIT
// Package: cobench/workload
//
// options.go - functional options for the workload generators.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package workload

import (
	"math/rand"
)

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultInf marks "no edge" in distance matrices.
	DefaultInf int64 = 1 << 20

	// DefaultLow and DefaultHigh bound Random values.
	DefaultLow  int64 = -20
	DefaultHigh int64 = 20

	defaultConstWeight int64 = 1
)

// Option customizes a generator before it runs.
type Option func(*config)

// config aggregates all knobs; passed by value to generators.
type config struct {
	rng        *rand.Rand
	weightFn   WeightFn
	inf        int64
	lo, hi     int64
	undirected bool
}

// newConfig applies opts over the deterministic defaults (last wins).
func newConfig(opts ...Option) config {
	cfg := config{
		weightFn: ConstantWeight(defaultConstWeight),
		inf:      DefaultInf,
		lo:       DefaultLow,
		hi:       DefaultHigh,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("workload: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("workload: WithWeightFn(nil)")
	}

	return func(c *config) { c.weightFn = fn }
}

// WithInf sets the "no edge" value. Panics unless inf > 0.
func WithInf(inf int64) Option {
	if inf <= 0 {
		panic("workload: WithInf(inf<=0)")
	}

	return func(c *config) { c.inf = inf }
}

// WithRange sets the inclusive bounds of Random values.
// Panics unless ValidRange(lo, hi).
func WithRange(lo, hi int64) Option {
	if !ValidRange(lo, hi) {
		panic("workload: WithRange: invalid range")
	}

	return func(c *config) { c.lo, c.hi = lo, hi }
}

// WithUndirected mirrors every generated edge (i→j also j→i).
// Grid is always undirected.
func WithUndirected() Option {
	return func(c *config) { c.undirected = true }
}
