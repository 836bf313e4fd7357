// SPDX-License-Identifier: MIT

// Package kernel: functional options shared by Transpose, Multiply and Closure.
// Recursive-variant knobs are forwarded to package quad unchanged; Tiled
// reads the tile side. Other variants ignore options.
package kernel

import "github.com/katalvlaran/cobench/quad"

// DefaultTile is the tile side of the Tiled variant. 32×32 int32 tiles
// (4 KiB each) keep three operand tiles inside a typical L1 data cache.
const DefaultTile = 32

const panicTileInvalid = "kernel: WithTile: tile must be >= 1"

// Option configures one kernel call.
type Option func(*config)

// config is the resolved per-call configuration.
type config struct {
	tile int
	quad []quad.Option
}

func newConfig(opts ...Option) config {
	c := config{tile: DefaultTile}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// WithThreshold sets the recursive base-case side (see quad.WithThreshold).
func WithThreshold(t int) Option {
	qo := quad.WithThreshold(t)

	return func(c *config) { c.quad = append(c.quad, qo) }
}

// WithWorkers sets the recursive fork-join width (see quad.WithWorkers).
// Closure ignores it.
func WithWorkers(w int) Option {
	qo := quad.WithWorkers(w)

	return func(c *config) { c.quad = append(c.quad, qo) }
}

// WithMinForkSide sets the smallest recursive child handed to another goroutine.
func WithMinForkSide(side int) Option {
	qo := quad.WithMinForkSide(side)

	return func(c *config) { c.quad = append(c.quad, qo) }
}

// WithOrder overrides the eight-step recursive order for Multiply or Closure.
func WithOrder(o quad.Order) Option {
	qo := quad.WithOrder(o)

	return func(c *config) { c.quad = append(c.quad, qo) }
}

// WithTile sets the Tiled variant's tile side. It is clamped to the matrix side.
func WithTile(t int) Option {
	if t < 1 {
		panic(panicTileInvalid)
	}

	return func(c *config) { c.tile = t }
}
