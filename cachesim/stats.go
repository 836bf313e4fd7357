// SPDX-License-Identifier: MIT

package cachesim

import "fmt"

// Stats are cumulative access counters.
type Stats struct {
	Accesses  uint64
	Writes    uint64
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns Hits/Accesses, or 0 before any access.
func (s Stats) HitRate() float64 {
	if s.Accesses == 0 {
		return 0
	}

	return float64(s.Hits) / float64(s.Accesses)
}

func (s Stats) String() string {
	return fmt.Sprintf("accesses=%d hits=%d misses=%d evictions=%d hit_rate=%.4f",
		s.Accesses, s.Hits, s.Misses, s.Evictions, s.HitRate())
}
