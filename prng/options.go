// SPDX-License-Identifier: MIT
// Package: lvlrand/prng
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless input (unknown
//     algorithm, nil factory, nil logger). Generators never panic on
//     configuration afterwards.
//   • Options are applied in order; later options override earlier ones.

package prng

import (
	"fmt"

	"github.com/go-kit/log"

	"github.com/katalvlaran/lvlrand/source"
)

// Option customizes a Generator before its first Initialize.
type Option func(*generatorConfig)

// WithAlgorithm selects a registered uniform algorithm.
// Panics when alg is not registered in package source.
func WithAlgorithm(alg source.Algorithm) Option {
	if _, err := source.New(alg); err != nil {
		panic(fmt.Sprintf("prng: WithAlgorithm(%q): %v", string(alg), err))
	}
	return func(c *generatorConfig) {
		c.algorithm = alg
		c.factory = algorithmFactory(alg)
	}
}

// WithSourceFactory injects a custom uniform engine. fn is called once per
// Initialize and must return a fresh Source each time.
// Panics on nil.
func WithSourceFactory(fn func() source.Source) Option {
	if fn == nil {
		panic("prng: WithSourceFactory(nil)")
	}
	return func(c *generatorConfig) {
		c.factory = fn
		c.algorithm = ""
	}
}

// WithLogger routes lifecycle logs (initialization, weak algorithm warnings)
// to logger. Panics on nil; omit the option to stay silent.
func WithLogger(logger log.Logger) Option {
	if logger == nil {
		panic("prng: WithLogger(nil)")
	}
	return func(c *generatorConfig) {
		c.logger = logger
	}
}
