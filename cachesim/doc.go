// Package cachesim is a small set-associative cache simulator used to count
// the cache misses each kernel variant incurs.
//
// Addresses and sizes are in elements (one matrix cell per address), not
// bytes. A Simulator lays matrices out in one flat simulated address space
// (Alloc) and implements grid.Observer, so attaching it to the operands with
// grid.WithObserver routes every Load and Store through the cache:
//
//	sim, _ := cachesim.New(cachesim.DefaultConfig())
//	a, _ := grid.New[int32](n, grid.WithObserver(sim, sim.Alloc(n*n)))
//
// The cache is write-allocate: a write miss fills the line like a read miss.
// Data values are not modelled, only residency.
package cachesim
