// SPDX-License-Identifier: MIT
// Package: lvlrand/prng
//
// generator.go — Generator lifecycle, the primitive draw and accessors.
//
// Contract:
//   • Initialize fully replaces engine state, seed, call count and Gaussian cache.
//   • Close1Open2 is the only method touching the Source; it increments the
//     call count by exactly one.
//   • Close releases the engine state; a closed Generator behaves as a new one.

package prng

import (
	"fmt"

	"github.com/go-kit/log/level"

	"github.com/katalvlaran/lvlrand/source"
)

// Generator is one independent, reproducible pseudo-random stream.
// The zero value is not usable; construct with New.
type Generator struct {
	cfg generatorConfig

	src         source.Source
	seed        uint32
	calls       uint64
	initialized bool

	// One spare Gaussian deviate from the previous polar transform.
	gauss gaussCache
}

type gaussCache struct {
	value float64
	ok    bool
}

// State is a read-only snapshot of a Generator, for logs and metrics.
type State struct {
	Seed           uint32
	Calls          uint64
	Algorithm      source.Algorithm
	Initialized    bool
	GaussianCached bool
}

// String renders the snapshot as space separated key=value pairs.
func (s State) String() string {
	return fmt.Sprintf("algorithm=%s seed=%d calls=%d initialized=%t gaussian_cached=%t",
		s.Algorithm, s.Seed, s.Calls, s.Initialized, s.GaussianCached)
}

// New returns an uninitialized Generator configured by opts.
func New(opts ...Option) *Generator {
	return &Generator{cfg: newGeneratorConfig(opts...)}
}

// NewSeeded is New followed by Initialize(seed).
func NewSeeded(seed uint32, opts ...Option) *Generator {
	g := New(opts...)
	g.Initialize(seed)
	return g
}

// Initialize (re)builds the engine state keyed on seed and resets the call
// count and Gaussian cache. It may be called any number of times.
func (g *Generator) Initialize(seed uint32) {
	src := g.cfg.factory()
	src.Seed(seed)

	g.src = src
	g.seed = seed
	g.calls = 0
	g.gauss = gaussCache{}
	g.initialized = true

	alg := src.Algorithm()
	_ = level.Info(g.cfg.logger).Log("msg", "prng initialized", "algorithm", alg, "seed", seed)
	if alg.Weak() {
		_ = level.Warn(g.cfg.logger).Log(
			"msg", "weak uniform generator in use, not suitable for new streams",
			"algorithm", alg,
			"recommended", source.Default,
		)
	}
}

// InitializeFromTime derives a seed from the clock and the process ID (see
// TimeSeed), initializes with it and returns it so the run can be replayed.
func (g *Generator) InitializeFromTime() uint32 {
	seed := TimeSeed()
	g.Initialize(seed)
	return seed
}

// Close releases the engine state. Drawing afterwards panics until the next
// Initialize. Seed and call count reset, so a closed Generator reads like a
// new one. Close is idempotent.
func (g *Generator) Close() {
	g.src = nil
	g.seed = 0
	g.calls = 0
	g.initialized = false
	g.gauss = gaussCache{}
}

// Close1Open2 returns the next primitive draw in [1,2). Every other method
// is derived from it.
func (g *Generator) Close1Open2() float64 {
	if !g.initialized {
		panic(uninitialized(methodClose1Open2))
	}
	g.calls++
	return g.src.Close1Open2()
}

// Seed returns the seed of the current initialization.
func (g *Generator) Seed() uint32 {
	return g.seed
}

// CallCount returns the number of primitive draws since Initialize.
func (g *Generator) CallCount() uint64 {
	return g.calls
}

// Initialized reports whether draws are allowed.
func (g *Generator) Initialized() bool {
	return g.initialized
}

// Algorithm reports the uniform algorithm in use (or configured, before the
// first Initialize).
func (g *Generator) Algorithm() source.Algorithm {
	if g.src != nil {
		return g.src.Algorithm()
	}
	return g.cfg.algorithm
}

// Snapshot returns the current State.
func (g *Generator) Snapshot() State {
	return State{
		Seed:           g.seed,
		Calls:          g.calls,
		Algorithm:      g.Algorithm(),
		Initialized:    g.initialized,
		GaussianCached: g.gauss.ok,
	}
}
