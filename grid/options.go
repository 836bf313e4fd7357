// SPDX-License-Identifier: MIT

// Package grid: functional options for Dense construction.
//   - Option constructors validate and panic on nonsensical values
//     (programmer error); constructors never panic on user input.
//   - No global state; options resolve into an unexported struct once.
package grid

// Option customizes a Dense at construction time.
type Option func(*options)

// options is the resolved construction state.
type options struct {
	observer Observer
	base     int
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilObserver  = "grid: WithObserver(nil)"
	panicNegativeBase = "grid: WithObserver: base must be >= 0"
)

// WithObserver attaches obs to the matrix; every Load/Store reports
// base+idx. base is usually obtained from the simulator's allocator so
// that distinct matrices occupy disjoint address ranges.
// Panics on nil obs or negative base.
func WithObserver(obs Observer, base int) Option {
	if obs == nil {
		panic(panicNilObserver)
	}
	if base < 0 {
		panic(panicNegativeBase)
	}

	return func(o *options) {
		o.observer = obs
		o.base = base
	}
}

// gatherOptions applies opts in order (last wins) over the zero defaults.
func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
