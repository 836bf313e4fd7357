// SPDX-License-Identifier: MIT

// Package quad: schedules, operands and step orders.
package quad

import "github.com/katalvlaran/cobench/grid"

// Schedule selects how a node's quadrants are combined into child calls.
type Schedule int

const (
	// Pairing pairs source quadrant (r,c) with destination quadrant (c,r).
	// Operands: [0]=source, [1]=destination.
	Pairing Schedule = iota + 1

	// Product recurses C_ij += A_ik·B_kj. Operands: [0]=A, [1]=B, [2]=C.
	Product

	// Closure recurses C_ij = min(C_ij, A_ik+B_kj) over one aliased matrix.
	// Operands: [0]=A, [1]=B, [2]=C. Never forked.
	Closure
)

// String returns the schedule name.
func (s Schedule) String() string {
	switch s {
	case Pairing:
		return "pairing"
	case Product:
		return "product"
	case Closure:
		return "closure"
	default:
		return "unknown"
	}
}

// arity is the number of operand slots the schedule uses.
func (s Schedule) arity() int {
	if s == Pairing {
		return 2
	}

	return 3
}

// Operands carries one Block per operand. A fixed-size array keeps the
// recursion allocation-free; slots beyond the schedule's arity are ignored.
type Operands [3]grid.Block

// Leaf is the base-case kernel, called with sub-blocks of side ≤ threshold.
type Leaf func(ops Operands)

// Step names one recursive call of a 3-operand schedule: destination
// quadrant (I, J) and reduction half K, all in {0, 1}.
type Step struct {
	I, J, K int
}

// Order is the sequence of the eight Steps executed at every node.
type Order [8]Step

// ProductOrder visits C-quadrants row by row, k=0 then k=1 for each.
var ProductOrder = Order{
	{0, 0, 0}, {0, 0, 1},
	{0, 1, 0}, {0, 1, 1},
	{1, 0, 0}, {1, 0, 1},
	{1, 1, 0}, {1, 1, 1},
}

// ClosureOrder is the in-place Floyd–Warshall order: a forward k=0 pass
// over 00, 01, 10, 11, then a backward k=1 pass over 11, 10, 01, 00.
var ClosureOrder = Order{
	{0, 0, 0}, {0, 1, 0}, {1, 0, 0}, {1, 1, 0},
	{1, 1, 1}, {1, 0, 1}, {0, 1, 1}, {0, 0, 1},
}

// ForwardClosureOrder runs both k passes forward. It keeps k=0 before k=1
// but is not a correct shortest-path order.
var ForwardClosureOrder = Order{
	{0, 0, 0}, {0, 1, 0}, {1, 0, 0}, {1, 1, 0},
	{0, 0, 1}, {0, 1, 1}, {1, 0, 1}, {1, 1, 1},
}
