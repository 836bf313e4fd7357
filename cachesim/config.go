// SPDX-License-Identifier: MIT
// Package: cobench/cachesim
//
// config.go - cache geometry and its validation.

package cachesim

import (
	"fmt"

	"github.com/katalvlaran/cobench/grid"
)

// Defaults follow the smallest configuration of the cache experiments:
// 1024 elements, 16-element lines, 2-way set associative, LRU.
const (
	DefaultSize     = 1024
	DefaultLineSize = 16
	DefaultWays     = 2
	DefaultPolicy   = LRU
	DefaultSeed     = 1
)

// Config describes a cache. Sizes are in elements.
type Config struct {
	Size     int    // total capacity; power of two
	LineSize int    // elements per line; power of two, ≤ Size
	Ways     int    // lines per set; 0 ⇒ fully associative
	Policy   Policy // replacement policy
	Seed     int64  // RNG seed for Random
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Size:     DefaultSize,
		LineSize: DefaultLineSize,
		Ways:     DefaultWays,
		Policy:   DefaultPolicy,
		Seed:     DefaultSeed,
	}
}

// Lines returns the number of lines in the cache.
func (c Config) Lines() int { return c.Size / c.LineSize }

// Associativity returns the effective ways per set (Ways, or all lines when 0).
func (c Config) Associativity() int {
	if c.Ways == 0 {
		return c.Lines()
	}

	return c.Ways
}

// Sets returns the number of sets.
func (c Config) Sets() int { return c.Lines() / c.Associativity() }

// Validate checks the geometry and policy.
func (c Config) Validate() error {
	if !grid.IsPowerOfTwo(c.Size) || !grid.IsPowerOfTwo(c.LineSize) {
		return fmt.Errorf("Validate: size=%d line=%d must be powers of two: %w", c.Size, c.LineSize, ErrBadGeometry)
	}
	if c.LineSize > c.Size {
		return fmt.Errorf("Validate: line=%d > size=%d: %w", c.LineSize, c.Size, ErrBadGeometry)
	}
	if c.Ways < 0 || c.Ways > c.Lines() || (c.Ways > 0 && c.Lines()%c.Ways != 0) {
		return fmt.Errorf("Validate: ways=%d for %d lines: %w", c.Ways, c.Lines(), ErrBadGeometry)
	}
	if _, ok := policyNames[c.Policy]; !ok {
		return fmt.Errorf("Validate: %s: %w", c.Policy, ErrUnknownPolicy)
	}

	return nil
}
