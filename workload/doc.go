// Package workload generates deterministic input matrices for the
// multiply, transpose and Floyd–Warshall programs.
//
// Two families:
//
//   - Random dense matrices: uniform integers in [lo, hi] (default [-20, 20]),
//     drawn row-major from a seeded RNG.
//   - Distance matrices of graph families (Cycle, Path, Complete, Grid,
//     RandomSparse): 0 on the diagonal, the edge weight where an edge
//     exists and Inf elsewhere. Parallel edges keep the smallest weight.
//
// Determinism: the same options, seed and call produce identical matrices.
// Stochastic constructors require WithSeed or WithRand (ErrNeedRandSource).
//
// Inf defaults to DefaultInf = 1<<20 so that Inf+Inf stays far below the
// int32 limit and min-plus relaxations never wrap.
//
//	w, err := workload.Cycle[int32](1024, workload.WithSeed(7),
//		workload.WithWeightFn(workload.UniformWeight(1, 100)))
package workload
