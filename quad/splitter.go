// SPDX-License-Identifier: MIT
// Package: quad
//
// Purpose:
//   - Single recursive driver shared by transpose, multiply and Floyd–Warshall.
//   - Deterministic visiting order per schedule; optional fork-join for the
//     schedules whose children write disjoint regions.
//
// Contract:
//   - All used operands share one side s; s is a power of two.
//   - Threshold t is a power of two; it is clamped to s (s == t ⇒ one leaf call).
//   - Leaf blocks are exactly the quadrant descendants of the input blocks.

package quad

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cobench/grid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// cancelCheckSide is the smallest node side at which the context is polled.
// Polling every node would cost more than the leaves themselves.
const cancelCheckSide = 64

// splitter carries the per-run state through the recursion.
type splitter struct {
	ctx         context.Context
	sched       Schedule
	threshold   int
	minForkSide int
	order       Order
	groups      [4][2]Step // order regrouped by C-quadrant (I*2+J), relative order kept
	leaf        Leaf
	sem         *semaphore.Weighted // nil ⇒ sequential
}

// Run drives the recursion for one schedule over ops.
// MAIN DESCRIPTION:
//   - Validate once, then recurse until side ≤ threshold and call leaf.
//
// Implementation:
//   - Stage 1: validate schedule, leaf, operand sides (power of two), threshold, order.
//   - Stage 2: build a semaphore of workers-1 extra goroutines when forking is allowed.
//   - Stage 3: descend from the root node.
//
// Errors:
//   - ErrUnknownSchedule, ErrNilLeaf, ErrSideMismatch, ErrBadOrder,
//     grid.ErrNotPowerOfTwo / grid.ErrBadSide / grid.ErrBadThreshold,
//     or ctx.Err() when cancelled.
//
// Complexity:
//   - Time: leaf cost × (s/t)³ for Product/Closure, × (s/t)² for Pairing.
//   - Space: O(log(s/t)) stack per goroutine.
func Run(ctx context.Context, sched Schedule, ops Operands, leaf Leaf, opts ...Option) error {
	if sched < Pairing || sched > Closure {
		return fmt.Errorf("Run(%d): %w", int(sched), ErrUnknownSchedule)
	}
	if leaf == nil {
		return fmt.Errorf("Run(%s): %w", sched, ErrNilLeaf)
	}

	side := ops[0].Side
	for i := 1; i < sched.arity(); i++ {
		if ops[i].Side != side {
			return fmt.Errorf("Run(%s): operand %d side %d != %d: %w", sched, i, ops[i].Side, side, ErrSideMismatch)
		}
	}
	if err := grid.ValidatePowerOfTwo(side); err != nil {
		return fmt.Errorf("Run(%s): %w", sched, err)
	}

	o := NewOptions(opts...)
	t := min(o.threshold, side)
	if err := grid.ValidateThreshold(side, t); err != nil {
		return fmt.Errorf("Run(%s): %w", sched, err)
	}

	s := &splitter{
		ctx:         ctx,
		sched:       sched,
		threshold:   t,
		minForkSide: o.minForkSide,
		leaf:        leaf,
	}

	if sched != Pairing {
		s.order = defaultOrder(sched)
		if o.orderSet {
			s.order = o.order
		}
		if err := ValidateOrder(sched, s.order); err != nil {
			return fmt.Errorf("Run(%s): %w", sched, err)
		}
		s.groupOrder()
	}

	if o.workers > 1 && sched != Closure {
		s.sem = semaphore.NewWeighted(int64(o.workers - 1))
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.descend(ops)
}

// defaultOrder returns the built-in order for a 3-operand schedule.
func defaultOrder(sched Schedule) Order {
	if sched == Closure {
		return ClosureOrder
	}

	return ProductOrder
}

// groupOrder splits the order into the two steps of each C-quadrant,
// preserving their relative order. ValidateOrder guarantees two per quadrant.
func (s *splitter) groupOrder() {
	var fill [4]int
	for _, st := range s.order {
		q := st.I*2 + st.J
		s.groups[q][fill[q]] = st
		fill[q]++
	}
}

// descend handles one node: either call the leaf or recurse per schedule.
func (s *splitter) descend(ops Operands) error {
	side := ops[0].Side
	if side <= s.threshold {
		s.leaf(ops)

		return nil
	}
	if side >= cancelCheckSide {
		if err := s.ctx.Err(); err != nil {
			return err
		}
	}

	switch s.sched {
	case Pairing:
		return s.pairing(ops)
	case Product:
		return s.product(ops)
	default:
		return s.closure(ops)
	}
}

// pairing recurses source (r,c) with destination (c,r). The four children
// write disjoint destination quadrants and may run concurrently.
func (s *splitter) pairing(ops Operands) error {
	src, dst := ops[0], ops[1]
	var children [4]Operands
	var r, c int
	for r = 0; r < 2; r++ {
		for c = 0; c < 2; c++ {
			children[r*2+c] = Operands{src.Quad(r, c), dst.Quad(c, r)}
		}
	}

	if !s.forkable(src.Side >> 1) {
		for _, ch := range children {
			if err := s.descend(ch); err != nil {
				return err
			}
		}

		return nil
	}

	var g errgroup.Group
	for _, ch := range children {
		if err := s.spawn(&g, func() error { return s.descend(ch) }); err != nil {
			_ = g.Wait()

			return err
		}
	}

	return g.Wait()
}

// productStep builds the child operands for one step: A_ik, B_kj, C_ij.
func productStep(ops Operands, st Step) Operands {
	return Operands{
		ops[0].Quad(st.I, st.K),
		ops[1].Quad(st.K, st.J),
		ops[2].Quad(st.I, st.J),
	}
}

// product runs the eight multiply-accumulate children. When forking, the
// four C-quadrants run concurrently and each keeps its two k-steps in order
// on one goroutine, so no two goroutines write the same cells.
func (s *splitter) product(ops Operands) error {
	if !s.forkable(ops[0].Side >> 1) {
		return s.sequential(ops)
	}

	var g errgroup.Group
	for q := range s.groups {
		steps := s.groups[q]
		err := s.spawn(&g, func() error {
			for _, st := range steps {
				if err := s.descend(productStep(ops, st)); err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			_ = g.Wait()

			return err
		}
	}

	return g.Wait()
}

// closure runs the eight min-plus children strictly in order.
func (s *splitter) closure(ops Operands) error {
	return s.sequential(ops)
}

// sequential walks s.order on the current goroutine.
func (s *splitter) sequential(ops Operands) error {
	for _, st := range s.order {
		if err := s.descend(productStep(ops, st)); err != nil {
			return err
		}
	}

	return nil
}

// forkable reports whether children of the given side may be handed off.
func (s *splitter) forkable(childSide int) bool {
	return s.sem != nil && childSide >= s.minForkSide
}

// spawn runs fn on a new goroutine when a worker slot is free and returns
// nil; otherwise it runs fn inline and returns its error. A parent never
// blocks waiting for a slot, so nested joins cannot deadlock.
func (s *splitter) spawn(g *errgroup.Group, fn func() error) error {
	if s.sem.TryAcquire(1) {
		g.Go(func() error {
			defer s.sem.Release(1)

			return fn()
		})

		return nil
	}

	return fn()
}
