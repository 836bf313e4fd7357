// Package quad is the recursive quadrant splitter behind every
// cache-oblivious kernel in this module.
//
// The driver receives up to three operand Blocks of equal side s and a
// base-case threshold t. While s > t it splits every operand into its four
// quadrants and recurses; once s ≤ t it calls the Leaf on exactly those
// sub-blocks. Which quadrant combinations are visited, and in what order,
// is fixed by the Schedule:
//
//   - Pairing (transpose): source quadrant (r,c) with destination (c,r);
//     four independent calls.
//   - Product (multiply-accumulate): C_ij += A_ik·B_kj for i,j,k ∈ {0,1};
//     eight calls, all completed before returning.
//   - Closure (min-plus, blocked Floyd–Warshall): the same eight
//     combinations over one aliased matrix, strictly sequential, every
//     k=0 call before any k=1 call.
//
// The order of the eight 3-operand calls is an Order value. ClosureOrder
// runs the k=1 pass over the C-quadrants in reverse (11, 10, 01, 00); this
// is what makes the in-place recursion agree with textbook Floyd–Warshall.
// ForwardClosureOrder keeps the forward pass for k=1 as well and misses
// paths on some graphs; it exists to show that ordering is load-bearing.
//
// Concurrency: WithWorkers(w>1) forks Pairing children and the four
// C-quadrants of Product (each quadrant keeps its two k contributions in
// order on one goroutine). Closure never forks. No locks are needed
// because every forked task writes a disjoint region.
//
// Complexity: a product over side n with threshold t makes (n/t)³ leaf
// calls; pairing makes (n/t)². Extra space is O(log(n/t)) stack.
package quad
