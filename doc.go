// Package cobench measures how loop structure affects cache behaviour for
// three dense-matrix workloads: transpose, multiply and Floyd–Warshall.
//
// Every operation comes in four variants selected at run time:
//
//	naive       textbook loop nest
//	transposed  loop interchange so the inner loop streams a row
//	recursive   cache-oblivious quadrant recursion down to a small leaf
//	tiled       cache-aware blocking with a fixed tile side
//
// All variants of one operation produce bit-identical results.
//
// Layout:
//
//	grid/      - flat row-major Dense[E] matrices, sub-block descriptors, validators
//	quad/      - the single recursive splitter (Pairing, Product, Closure schedules)
//	kernel/    - Transpose, Multiply, Closure and their leaf kernels
//	textio/    - whitespace-separated integer file format
//	cachesim/  - set-associative cache simulator (LRU, LFU, FIFO, Random)
//	workload/  - seeded random matrices and graph distance matrices
//	cmd/       - matmul, fwalg, mattrans, gendata
//
// Quick recursion picture (one Product node, C += A·B):
//
//	C00 += A00·B00, A01·B10    C01 += A00·B01, A01·B11
//	C10 += A10·B00, A11·B10    C11 += A10·B01, A11·B11
//
// Quick start:
//
//	go run ./cmd/gendata dense --n 1024 A_data B_data
//	go run ./cmd/matmul recursive --n 1024 --threshold 0
package cobench
