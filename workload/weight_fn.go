// SPDX-License-Identifier: MIT

package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeight returns a WeightFn that always yields value.
func ConstantWeight(value int64) WeightFn {
	return func(_ *rand.Rand) int64 { return value }
}

// ValidRange reports whether [lo, hi] is non-empty and its width hi-lo+1
// is representable as a positive int64.
func ValidRange(lo, hi int64) bool {
	if lo > hi {
		return false
	}
	span := hi - lo // wraps negative when the width exceeds int64

	return span >= 0 && span < math.MaxInt64
}

// UniformWeight returns a WeightFn sampling uniformly in [lo, hi].
// Panics unless ValidRange(lo, hi). With a nil RNG it yields lo.
func UniformWeight(lo, hi int64) WeightFn {
	if !ValidRange(lo, hi) {
		panic(fmt.Sprintf("workload: UniformWeight: invalid range lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || lo == hi {
			return lo
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}
