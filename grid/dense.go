// SPDX-License-Identifier: MIT

// Package grid - Dense storage (square, row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Offer unchecked Load/Store for kernels that validated their blocks up front.
//   - Report every Load/Store to an optional Observer (cache simulation).
//
// AI-Hints:
//   - Kernels validate Blocks once (ValidateBlock) and then use Load/Store only.
//   - Data() exposes the shared buffer; mutations are visible through the Dense.
//
// Complexity quicksheet:
//   - New: O(n²) zero-init; At/Set/Load/Store: O(1); Clone/Equal/Fill: O(n²).

package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxFill = "Fill"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete square row-major matrix of side n.
//   - data is a flat buffer of length n*n (offset = i*n + j).
//   - obs/base are the optional access observer and its base address.
type Dense[E Element] struct {
	n    int      // side length (>0)
	data []E      // contiguous row-major storage (len == n*n)
	obs  Observer // nil unless WithObserver was applied
	base int      // address of element 0 as seen by obs
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[int32])(nil)

// New creates an n×n zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict side validation.
//
// Implementation:
//   - Stage 1: validate n > 0; else ErrBadSide.
//   - Stage 2: allocate zero-filled buffer of n*n elements.
//   - Stage 3: apply options (observer).
//
// Errors:
//   - ErrBadSide (shape contract violation).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New[E Element](n int, opts ...Option) (*Dense[E], error) {
	if n <= 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrBadSide)
	}
	m := &Dense[E]{n: n, data: make([]E, n*n)}
	m.apply(opts)

	return m, nil
}

// FromSlice creates an n×n matrix holding a copy of data (row-major).
// Returns ErrBadSide for n ≤ 0 and ErrDimensionMismatch when len(data) != n*n.
// Complexity: O(n²).
func FromSlice[E Element](n int, data []E, opts ...Option) (*Dense[E], error) {
	m, err := New[E](n, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.Fill(data); err != nil {
		return nil, err
	}

	return m, nil
}

// apply resolves options onto the receiver.
func (m *Dense[E]) apply(opts []Option) {
	o := gatherOptions(opts...)
	m.obs, m.base = o.observer, o.base
}

// Side returns the side length n. Complexity: O(1).
func (m *Dense[E]) Side() int { return m.n }

// Len returns n*n, the number of stored elements. Complexity: O(1).
func (m *Dense[E]) Len() int { return len(m.data) }

// Data returns the backing row-major buffer (shared, not copied).
// Writes through the returned slice bypass the Observer.
func (m *Dense[E]) Data() []E { return m.data }

// Row returns row i as a subslice of the backing buffer (shared).
// Returns ErrOutOfRange for i outside [0, n).
func (m *Dense[E]) Row(i int) ([]E, error) {
	if i < 0 || i >= m.n {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}

	return m.data[i*m.n : (i+1)*m.n], nil
}

// Base returns the address of element 0 as reported to the Observer.
func (m *Dense[E]) Base() int { return m.base }

// Observed reports whether an Observer is attached.
func (m *Dense[E]) Observed() bool { return m.obs != nil }

// indexOf bounds-checks (row, col) and computes the row-major offset.
func (m *Dense[E]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// At never reports to the Observer; it is a diagnostic accessor.
func (m *Dense[E]) At(row, col int) (E, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense[E]) Set(row, col int, v E) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Load returns the element at flat offset idx, reporting the read to the
// Observer when one is attached. An idx outside [0, n*n) panics like any
// slice access; kernels validate their blocks beforehand.
func (m *Dense[E]) Load(idx int) E {
	if m.obs != nil {
		m.obs.Observe(m.base+idx, false)
	}

	return m.data[idx]
}

// Store writes v at flat offset idx, reporting the write to the Observer.
func (m *Dense[E]) Store(idx int, v E) {
	if m.obs != nil {
		m.obs.Observe(m.base+idx, true)
	}
	m.data[idx] = v
}

// Fill copies data (row-major, len == n*n) into the matrix.
// Returns ErrDimensionMismatch on a length mismatch; nothing is written then.
func (m *Dense[E]) Fill(data []E) error {
	if len(data) != len(m.data) {
		return fmt.Errorf("Dense.%s: len=%d, want %d: %w", ctxFill, len(data), len(m.data), ErrDimensionMismatch)
	}
	copy(m.data, data)

	return nil
}

// Zero resets every element to 0.
func (m *Dense[E]) Zero() {
	clear(m.data)
}

// Clone returns a deep copy with the same side. The copy has no Observer.
// Complexity: O(n²).
func (m *Dense[E]) Clone() *Dense[E] {
	cp := make([]E, len(m.data))
	copy(cp, m.data)

	return &Dense[E]{n: m.n, data: cp}
}

// Equal reports whether other has the same side and identical elements.
// A nil other is never equal.
func (m *Dense[E]) Equal(other *Dense[E]) bool {
	if other == nil || other.n != m.n {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}

	return true
}

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// String renders rows as "[a, b, c]" lines for diagnostics (not hot paths).
func (m *Dense[E]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatInt(int64(m.data[i*m.n+j]), 10))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
