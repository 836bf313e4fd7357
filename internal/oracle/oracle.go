// SPDX-License-Identifier: MIT
// Package: cobench/internal/oracle
//
// Package oracle computes all-pairs shortest paths independently of the
// Floyd–Warshall kernels, by running Dijkstra from every source over the
// same distance matrix. Tests compare the kernels against it.
//
// Contract:
//   - w[i][j] ≥ inf means "no edge"; all present weights are ≥ 0
//     (else ErrNegativeWeight).
//   - Every diagonal entry must be 0 (else ErrNonZeroDiagonal). Floyd–Warshall
//     keeps min(w[s][s], cycle) there, so only a zero diagonal makes
//     dist[s][s] = 0 agree cell-for-cell.
//   - Unreachable pairs keep w's original value when it was ≥ inf on the
//     input, so outputs compare cell-for-cell with Floyd–Warshall, which
//     never writes a non-improving value.
//
// Complexity: Time O(n · n² log n) with a lazy binary heap, Space O(n²).
package oracle

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/katalvlaran/cobench/grid"
)

var (
	// ErrNegativeWeight indicates a present edge with weight < 0.
	ErrNegativeWeight = errors.New("oracle: negative edge weight")

	// ErrNonZeroDiagonal indicates w[s][s] != 0.
	ErrNonZeroDiagonal = errors.New("oracle: non-zero diagonal")
)

// AllPairs returns a new matrix of shortest-path lengths for w.
// w is not modified.
func AllPairs[E grid.Element](w *grid.Dense[E], inf E) (*grid.Dense[E], error) {
	n, err := grid.ValidateSameSide(w)
	if err != nil {
		return nil, fmt.Errorf("AllPairs: %w", err)
	}
	src := w.Data()
	for idx, v := range src {
		i, j := idx/n, idx%n
		switch {
		case i == j && v != 0:
			return nil, fmt.Errorf("AllPairs: w[%d][%d]=%d: %w", i, j, int64(v), ErrNonZeroDiagonal)
		case v < 0:
			return nil, fmt.Errorf("AllPairs: w[%d][%d]=%d: %w", i, j, int64(v), ErrNegativeWeight)
		}
	}

	out := w.Clone()
	r := &runner[E]{n: n, w: src, inf: inf, dist: make([]E, n), done: make([]bool, n)}
	for s := 0; s < n; s++ {
		r.run(s)
		row := out.Data()[s*n : (s+1)*n]
		for v := 0; v < n; v++ {
			// Only strict improvements, mirroring the relaxation rule.
			if r.done[v] && r.dist[v] < row[v] {
				row[v] = r.dist[v]
			}
		}
	}

	return out, nil
}

// runner holds the per-source scratch state, reused across sources.
type runner[E grid.Element] struct {
	n    int
	w    []E
	inf  E
	dist []E
	done []bool
	pq   nodePQ[E]
}

// run computes single-source distances from s into r.dist; r.done marks
// the settled (reachable) vertices.
func (r *runner[E]) run(s int) {
	clear(r.done)
	r.pq = r.pq[:0]
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem[E]{id: s, dist: 0})

	var (
		item nodeItem[E]
		u, v int
		wt   E
		cand E
	)
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(nodeItem[E])
		u = item.id
		if r.done[u] {
			continue // stale entry (lazy decrease-key)
		}
		r.done[u] = true
		r.dist[u] = item.dist

		for v = 0; v < r.n; v++ {
			wt = r.w[u*r.n+v]
			if v == u || r.done[v] || wt >= r.inf {
				continue
			}
			cand = item.dist + wt
			heap.Push(&r.pq, nodeItem[E]{id: v, dist: cand})
		}
	}
}

// nodeItem is a heap entry; outdated entries stay in the heap and are
// skipped when popped.
type nodeItem[E grid.Element] struct {
	id   int
	dist E
}

// nodePQ is a min-heap of nodeItem ordered by dist, then id for stable pops.
type nodePQ[E grid.Element] []nodeItem[E]

func (pq nodePQ[E]) Len() int { return len(pq) }
func (pq nodePQ[E]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}
func (pq nodePQ[E]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem[E].
func (pq *nodePQ[E]) Push(x any) { *pq = append(*pq, x.(nodeItem[E])) }

// Pop is called by heap.Pop.
func (pq *nodePQ[E]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
