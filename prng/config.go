// SPDX-License-Identifier: MIT
// Package: lvlrand/prng
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • algorithm = source.Default (dSFMT-19937)
//   • factory   = source.New(algorithm)
//   • logger    = log.NewNopLogger() (initialization logs suppressed)

package prng

import (
	"github.com/go-kit/log"

	"github.com/katalvlaran/lvlrand/source"
)

// generatorConfig aggregates all knobs of a Generator. It is resolved once in
// New and never mutated afterwards.
type generatorConfig struct {
	// Name of the configured algorithm; refined from the Source on Initialize
	// when a custom factory is used.
	algorithm source.Algorithm
	// Builds a fresh, unseeded engine state for every Initialize.
	factory func() source.Source
	// Destination of lifecycle logs.
	logger log.Logger
}

// newGeneratorConfig applies options in order over the defaults (last wins).
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		algorithm: source.Default,
		factory:   algorithmFactory(source.Default),
		logger:    log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// algorithmFactory returns a constructor for a registered algorithm. The
// algorithm must already be validated.
func algorithmFactory(alg source.Algorithm) func() source.Source {
	return func() source.Source {
		src, _ := source.New(alg)
		return src
	}
}
