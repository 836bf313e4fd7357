// SPDX-License-Identifier: MIT
// Package: cobench/cachesim
//
// simulator.go - shared, mutex-guarded cache front end.
//
// Contract:
//   - Simulator implements grid.Observer; Observe may be called from
//     several goroutines (parallel kernels).
//   - Alloc hands out line-aligned, non-overlapping address ranges in call
//     order, starting at 0.
//   - Reset clears cache state and counters but keeps allocations, so the
//     same matrices can be measured again.

package cachesim

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/cobench/grid"
)

var _ grid.Observer = (*Simulator)(nil)

// Simulator wraps a Cache with an address allocator and a mutex.
type Simulator struct {
	mu    sync.Mutex
	cache *Cache
	next  int
}

// New returns a simulator over a fresh cache built from cfg.
func New(cfg Config) (*Simulator, error) {
	c, err := NewCache(cfg)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Simulator{cache: c}, nil
}

// Alloc reserves elements addresses and returns the base address.
// Panics on a negative size.
func (s *Simulator) Alloc(elements int) int {
	if elements < 0 {
		panic(fmt.Sprintf("cachesim: Alloc(%d): negative size", elements))
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	base := s.next
	ls := s.cache.cfg.LineSize
	s.next = (base + elements + ls - 1) &^ (ls - 1)

	return base
}

// Observe records one access; it satisfies grid.Observer.
func (s *Simulator) Observe(addr int, write bool) {
	s.mu.Lock()
	s.cache.Access(addr, write)
	s.mu.Unlock()
}

// Stats returns a snapshot of the counters.
func (s *Simulator) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cache.Stats()
}

// Reset clears the cache and counters.
func (s *Simulator) Reset() {
	s.mu.Lock()
	s.cache.Reset()
	s.mu.Unlock()
}

// Config returns the cache geometry.
func (s *Simulator) Config() Config { return s.cache.Config() }
