// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/cobench/cachesim"
	"github.com/katalvlaran/cobench/grid"
	"github.com/katalvlaran/cobench/kernel"
	"github.com/katalvlaran/cobench/textio"
)

// Env is the resolved invocation handed to a program's Run function.
type Env struct {
	Ctx     context.Context
	Log     *slog.Logger
	Variant kernel.Variant
	N       int
	Opts    []kernel.Option
	Sim     *cachesim.Simulator // nil unless --simulate
}

// gridOptions attaches the simulator to a new n×n matrix, if any.
func (e *Env) gridOptions() []grid.Option {
	if e.Sim == nil {
		return nil
	}

	return []grid.Option{grid.WithObserver(e.Sim, e.Sim.Alloc(e.N*e.N))}
}

// Load reads an N×N matrix from path.
func (e *Env) Load(path string) (*grid.Dense[int32], error) {
	m, err := textio.ReadDense[int32](path, e.N, e.gridOptions()...)
	if err != nil {
		return nil, err
	}
	e.Log.Debug("loaded", "path", path, "n", e.N)

	return m, nil
}

// Alloc returns a zeroed N×N matrix.
func (e *Env) Alloc() (*grid.Dense[int32], error) {
	return grid.New[int32](e.N, e.gridOptions()...)
}

// Save writes m to path, truncating it.
func (e *Env) Save(path string, m *grid.Dense[int32]) error {
	if err := textio.WriteFile(path, m.Data()); err != nil {
		return err
	}
	e.Log.Debug("saved", "path", path)

	return nil
}

// Measure runs fn, then logs its wall time and, when simulating, the cache
// counters accumulated by fn alone.
func (e *Env) Measure(op string, fn func() error) error {
	if e.Sim != nil {
		e.Sim.Reset()
	}
	start := time.Now()
	if err := fn(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	elapsed := time.Since(start)

	attrs := []any{"op", op, "variant", e.Variant.String(), "n", e.N, "elapsed", elapsed}
	if e.Sim != nil {
		st := e.Sim.Stats()
		attrs = append(attrs,
			"accesses", st.Accesses, "hits", st.Hits, "misses", st.Misses,
			"evictions", st.Evictions, "hit_rate", st.HitRate())
	}
	e.Log.Info("done", attrs...)

	return nil
}
