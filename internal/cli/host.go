// SPDX-License-Identifier: MIT

package cli

import (
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/katalvlaran/cobench/grid"
)

// CacheLineBytes is the host cache-line size as known to x/sys/cpu for
// the build architecture.
func CacheLineBytes() int {
	return int(unsafe.Sizeof(cpu.CacheLinePad{}))
}

// AutoThreshold picks the recursive base-case side for elements of
// elemBytes: the largest power of two whose row fits one cache line,
// clamped to [1, n].
func AutoThreshold(elemBytes, n int) int {
	per := CacheLineBytes() / max(elemBytes, 1)
	t := 1
	for t*2 <= per && t*2 <= n {
		t *= 2
	}

	return t
}

// lineElements converts the host line size to elements of elemBytes,
// rounded down to a power of two (at least 1).
func lineElements(elemBytes int) int {
	per := CacheLineBytes() / max(elemBytes, 1)
	if per < 1 {
		return 1
	}

	return 1 << grid.Log2(per)
}
