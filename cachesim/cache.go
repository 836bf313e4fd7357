// SPDX-License-Identifier: MIT
// Package: cobench/cachesim
//
// cache.go - set-associative cache with pluggable replacement.
//
// Addressing (element units):
//   - line  = addr / LineSize
//   - set   = line mod Sets
//   - tag   = line / Sets
//
// Per-line bookkeeping word `use`:
//   - LRU:  logical clock of the last access;
//   - LFU:  access count since fill;
//   - FIFO: logical clock of the fill;
//   - Random: unused.
//
// Invalid lines are always filled before any valid line is evicted.

package cachesim

import (
	"fmt"
	"math/rand"
)

type line struct {
	tag   int
	use   uint64
	valid bool
}

// Cache is a single-threaded cache model. Use Simulator for shared access.
type Cache struct {
	cfg       Config
	ways      int
	sets      int
	lineShift int
	lines     []line // sets × ways, row-major by set
	clock     uint64
	rng       *rand.Rand
	stats     Stats
}

// NewCache validates cfg and returns an empty cache.
func NewCache(cfg Config) (*Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewCache: %w", err)
	}
	c := &Cache{
		cfg:   cfg,
		ways:  cfg.Associativity(),
		sets:  cfg.Sets(),
		lines: make([]line, cfg.Lines()),
		rng:   rand.New(rand.NewSource(cfg.Seed)),
	}
	for s := cfg.LineSize; s > 1; s >>= 1 {
		c.lineShift++
	}

	return c, nil
}

// Config returns the cache geometry.
func (c *Cache) Config() Config { return c.cfg }

// Access touches addr and reports whether it hit. A miss fills the line,
// evicting a victim per policy when the set is full. Negative addresses
// are a programmer error and panic.
func (c *Cache) Access(addr int, write bool) bool {
	if addr < 0 {
		panic(fmt.Sprintf("cachesim: Access(%d): negative address", addr))
	}
	c.clock++
	c.stats.Accesses++
	if write {
		c.stats.Writes++
	}

	ln := addr >> c.lineShift
	tag := ln / c.sets
	set := c.lines[(ln%c.sets)*c.ways : (ln%c.sets+1)*c.ways]

	for w := range set {
		if set[w].valid && set[w].tag == tag {
			c.stats.Hits++
			c.touch(&set[w])

			return true
		}
	}

	c.stats.Misses++
	v := c.victim(set)
	if set[v].valid {
		c.stats.Evictions++
	}
	set[v] = line{tag: tag, valid: true}
	c.fill(&set[v])

	return false
}

// touch updates bookkeeping on a hit.
func (c *Cache) touch(l *line) {
	switch c.cfg.Policy {
	case LRU:
		l.use = c.clock
	case LFU:
		l.use++
	}
}

// fill initializes bookkeeping for a freshly filled line.
func (c *Cache) fill(l *line) {
	switch c.cfg.Policy {
	case LRU, FIFO:
		l.use = c.clock
	case LFU:
		l.use = 1
	}
}

// victim picks the way to replace in set.
func (c *Cache) victim(set []line) int {
	for w := range set {
		if !set[w].valid {
			return w
		}
	}
	if c.cfg.Policy == Random {
		return c.rng.Intn(len(set))
	}

	v := 0
	for w := 1; w < len(set); w++ {
		if set[w].use < set[v].use {
			v = w
		}
	}

	return v
}

// Stats returns the counters accumulated since creation or the last Reset.
func (c *Cache) Stats() Stats { return c.stats }

// Reset invalidates every line, zeroes the counters and reseeds the RNG.
func (c *Cache) Reset() {
	clear(c.lines)
	c.clock = 0
	c.stats = Stats{}
	c.rng.Seed(c.cfg.Seed)
}
