// Package kernel implements matrix transpose, multiply-accumulate and
// all-pairs shortest paths (Floyd–Warshall closure) over grid.Dense
// integer matrices, each in four interchangeable variants:
//
//   - Naive:      textbook loop order.
//   - Transposed: loop order interchanged for contiguous inner access.
//   - Recursive:  cache-oblivious quadrant recursion (package quad) down to
//     a small base case, then a direct loop kernel on that block.
//   - Tiled:      cache-aware loop tiling with an explicit tile side.
//
// All variants of one operation produce bit-identical results: the
// arithmetic is exact integer add/multiply/min with wraparound, so
// reassociation cannot change the outcome. For Closure this holds when the
// graph has no negative cycle and the "no edge" value is small enough that
// a sum of two entries does not wrap.
//
// The base-case kernels (TransposeLeaf, MulAddLeaf, MinPlusLeaf) are
// exported so callers can drive quad.Run with their own operands.
//
// Every element access goes through grid.Dense Load/Store, so a matrix
// built with grid.WithObserver reports its exact access trace (see package
// cachesim).
//
// Errors: nil operands, side mismatch and aliasing return sentinels; the
// recursive variant also requires a power-of-two side.
package kernel
