package cachesim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cobench/cachesim"
)

// trace runs addrs (reads) through a fresh cache and returns the hit pattern.
func trace(t *testing.T, cfg cachesim.Config, addrs ...int) []bool {
	t.Helper()
	c, err := cachesim.NewCache(cfg)
	require.NoError(t, err)
	hits := make([]bool, len(addrs))
	for i, a := range addrs {
		hits[i] = c.Access(a, false)
	}

	return hits
}

// twoLines is a fully associative cache holding two one-element lines.
func twoLines(p cachesim.Policy) cachesim.Config {
	return cachesim.Config{Size: 2, LineSize: 1, Ways: 0, Policy: p, Seed: 1}
}

func TestReplacement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		policy cachesim.Policy
		addrs  []int
		want   []bool
	}{
		// 2 evicts 1 (least recent), so 0 hits and 1 misses.
		{"LRU", cachesim.LRU, []int{0, 1, 0, 2, 0, 1}, []bool{false, false, true, false, true, false}},
		// 2 evicts 0 (first in) despite the hit on 0; 0 then evicts 1.
		{"FIFO", cachesim.FIFO, []int{0, 1, 0, 2, 0, 2}, []bool{false, false, true, false, false, true}},
		// 0 is used twice, so 2 evicts 1 and 1 later evicts 2.
		{"LFU", cachesim.LFU, []int{0, 0, 1, 2, 0, 1, 0}, []bool{false, true, false, false, true, false, true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, trace(t, twoLines(tc.policy), tc.addrs...))
		})
	}
}

func TestRandom_DeterministicPerSeed(t *testing.T) {
	t.Parallel()

	addrs := make([]int, 200)
	for i := range addrs {
		addrs[i] = (i * 7) % 13
	}
	cfg := cachesim.Config{Size: 4, LineSize: 1, Policy: cachesim.Random, Seed: 42}
	assert.Equal(t, trace(t, cfg, addrs...), trace(t, cfg, addrs...))
}

func TestSetMapping(t *testing.T) {
	t.Parallel()

	// 4 lines of 2 elements, 2 ways ⇒ 2 sets. Lines 0, 2, 4 map to set 0.
	c, err := cachesim.NewCache(cachesim.Config{Size: 8, LineSize: 2, Ways: 2, Policy: cachesim.LRU})
	require.NoError(t, err)

	assert.False(t, c.Access(0, false)) // line 0, set 0
	assert.True(t, c.Access(1, true))   // same line
	assert.False(t, c.Access(2, false)) // line 1, set 1
	assert.False(t, c.Access(4, false)) // line 2, set 0
	assert.False(t, c.Access(8, false)) // line 4, set 0: evicts line 0
	assert.True(t, c.Access(3, false))  // set 1 untouched
	assert.False(t, c.Access(0, false))

	st := c.Stats()
	assert.Equal(t, uint64(7), st.Accesses)
	assert.Equal(t, uint64(1), st.Writes)
	assert.Equal(t, uint64(2), st.Hits)
	assert.Equal(t, uint64(5), st.Misses)
	assert.Equal(t, uint64(2), st.Evictions)
	assert.InDelta(t, 2.0/7.0, st.HitRate(), 1e-12)

	c.Reset()
	assert.Equal(t, cachesim.Stats{}, c.Stats())
	assert.False(t, c.Access(1, false))
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, cachesim.DefaultConfig().Validate())

	bad := []cachesim.Config{
		{Size: 1000, LineSize: 8, Policy: cachesim.LRU},
		{Size: 1024, LineSize: 6, Policy: cachesim.LRU},
		{Size: 8, LineSize: 16, Policy: cachesim.LRU},
		{Size: 64, LineSize: 8, Ways: 3, Policy: cachesim.LRU},
		{Size: 64, LineSize: 8, Ways: 16, Policy: cachesim.LRU},
		{Size: 64, LineSize: 8, Ways: -1, Policy: cachesim.LRU},
	}
	for _, cfg := range bad {
		assert.ErrorIs(t, cfg.Validate(), cachesim.ErrBadGeometry, "%+v", cfg)
	}

	_, err := cachesim.NewCache(cachesim.Config{Size: 64, LineSize: 8})
	assert.ErrorIs(t, err, cachesim.ErrUnknownPolicy)
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	for _, p := range cachesim.Policies() {
		got, err := cachesim.ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	got, err := cachesim.ParsePolicy("RAND")
	require.NoError(t, err)
	assert.Equal(t, cachesim.Random, got)

	_, err = cachesim.ParsePolicy("mru")
	assert.ErrorIs(t, err, cachesim.ErrUnknownPolicy)
	assert.Equal(t, []string{"lru", "lfu", "fifo", "random"}, cachesim.PolicyNames())
}
