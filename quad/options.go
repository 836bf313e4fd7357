// SPDX-License-Identifier: MIT

// Package quad: functional options for the splitter.
//   - Defaults are documented constants (single source of truth).
//   - Option constructors panic on nonsensical values (programmer error);
//     Run itself never panics on user input.
package quad

// ---------- Defaults ----------

const (
	// DefaultThreshold is the base-case side. 2 matches the classic
	// "recurse down to 2×2" kernels.
	DefaultThreshold = 2

	// DefaultWorkers is the fork-join width; 1 means strictly sequential.
	DefaultWorkers = 1

	// DefaultMinForkSide is the smallest child side that is handed to another
	// goroutine. Smaller children run inline.
	DefaultMinForkSide = 64
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholdInvalid   = "quad: WithThreshold: t must be >= 1"
	panicWorkersInvalid     = "quad: WithWorkers: w must be >= 0"
	panicMinForkSideInvalid = "quad: WithMinForkSide: side must be >= 1"
)

// Option mutates the splitter configuration.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; build it
// with NewOptions or pass Option values to Run.
type Options struct {
	threshold   int
	workers     int
	minForkSide int
	order       Order
	orderSet    bool
}

// NewOptions resolves opts over the defaults (later options win).
func NewOptions(opts ...Option) Options {
	o := Options{
		threshold:   DefaultThreshold,
		workers:     DefaultWorkers,
		minForkSide: DefaultMinForkSide,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Threshold returns the configured base-case side.
func (o Options) Threshold() int { return o.threshold }

// Workers returns the configured fork-join width.
func (o Options) Workers() int { return o.workers }

// WithThreshold sets the base-case side t; recursion stops once side ≤ t.
// t must be a power of two for exact halving; Run validates that.
func WithThreshold(t int) Option {
	if t < 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = t }
}

// WithWorkers sets the fork-join width for Pairing and Product.
// 0 and 1 both mean sequential. Closure ignores it.
func WithWorkers(w int) Option {
	if w < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = w }
}

// WithMinForkSide sets the smallest child side that may run on another goroutine.
func WithMinForkSide(side int) Option {
	if side < 1 {
		panic(panicMinForkSideInvalid)
	}

	return func(o *Options) { o.minForkSide = side }
}

// WithOrder overrides the eight-step order for Product or Closure.
// Run rejects orders that fail ValidateOrder.
func WithOrder(ord Order) Option {
	return func(o *Options) {
		o.order = ord
		o.orderSet = true
	}
}
