// SPDX-License-Identifier: MIT
// Package: cobench/internal/cli
//
// flags.go - flags shared by every kernel program.
//
//	--n            matrix side, power of two
//	--threshold    recursive base-case side; 0 ⇒ host cache line
//	--tile         tiled variant tile side
//	--workers      recursive fork-join width
//	--log-level    debug|info|warn|error
//	--simulate     route accesses through the cache simulator
//	--cache-size, --line-size, --ways, --policy, --seed   simulator geometry

package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/cobench/cachesim"
	"github.com/katalvlaran/cobench/kernel"
	"github.com/katalvlaran/cobench/quad"
)

// elemBytes is the size of the programs' element type (int32).
const elemBytes = 4

// commonFlags are bound once per command.
type commonFlags struct {
	n         int
	threshold int
	tile      int
	workers   int
	logLevel  string

	simulate  bool
	cacheSize int
	lineSize  int
	ways      int
	policy    cachesim.Policy
	seed      int64
}

func (f *commonFlags) bind(fs *pflag.FlagSet, defaultN int) {
	fs.Var(newPow2Value(defaultN, &f.n, false), "n", "matrix side (power of two)")
	fs.Var(newPow2Value(quad.DefaultThreshold, &f.threshold, true), "threshold",
		"recursive base-case side (power of two; 0 = fit one host cache line)")
	fs.IntVar(&f.tile, "tile", kernel.DefaultTile, "tile side for the tiled variant")
	fs.IntVar(&f.workers, "workers", quad.DefaultWorkers, "fork-join width for recursive transpose/multiply")
	fs.StringVar(&f.logLevel, "log-level", DefaultLogLevel, "log level (debug|info|warn|error)")

	fs.BoolVar(&f.simulate, "simulate", false, "count cache misses with the simulator")
	fs.Var(newPow2Value(cachesim.DefaultSize, &f.cacheSize, false), "cache-size", "simulated cache size in elements")
	fs.Var(newPow2Value(cachesim.DefaultLineSize, &f.lineSize, true), "line-size",
		"simulated line size in elements (0 = host cache line)")
	fs.IntVar(&f.ways, "ways", cachesim.DefaultWays, "simulated associativity (0 = fully associative)")
	fs.Var(newPolicyValue(cachesim.DefaultPolicy, &f.policy), "policy", "simulated replacement policy")
	fs.Int64Var(&f.seed, "seed", cachesim.DefaultSeed, "seed for the random replacement policy")
}

// validate checks cross-flag constraints that pflag values cannot.
func (f *commonFlags) validate() error {
	if f.tile < 1 {
		return fmt.Errorf("--tile=%d must be >= 1: %w", f.tile, kernel.ErrInvalidArgument)
	}
	if f.workers < 0 {
		return fmt.Errorf("--workers=%d must be >= 0: %w", f.workers, kernel.ErrInvalidArgument)
	}
	if f.threshold > f.n {
		return fmt.Errorf("--threshold=%d exceeds --n=%d: %w", f.threshold, f.n, kernel.ErrInvalidArgument)
	}

	return nil
}

// resolvedThreshold applies the --threshold 0 rule.
func (f *commonFlags) resolvedThreshold() int {
	if f.threshold == 0 {
		return AutoThreshold(elemBytes, f.n)
	}

	return f.threshold
}

// kernelOptions translates the flags into kernel options.
func (f *commonFlags) kernelOptions() []kernel.Option {
	return []kernel.Option{
		kernel.WithThreshold(f.resolvedThreshold()),
		kernel.WithTile(f.tile),
		kernel.WithWorkers(f.workers),
	}
}

// simConfig builds the simulator geometry.
func (f *commonFlags) simConfig() cachesim.Config {
	ls := f.lineSize
	if ls == 0 {
		ls = lineElements(elemBytes)
	}

	return cachesim.Config{
		Size:     f.cacheSize,
		LineSize: ls,
		Ways:     f.ways,
		Policy:   f.policy,
		Seed:     f.seed,
	}
}
