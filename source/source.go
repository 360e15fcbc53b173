// SPDX-License-Identifier: MIT
// Package: lvlrand/source
//
// source.go — the Source capability, algorithm names and the constructor registry.
//
// Contract:
//   • Close1Open2 returns values in [1,2) exclusively.
//   • Seed fully replaces the engine state; equal seeds give equal streams.
//   • New never returns a seeded source: callers must call Seed first.

package source

import (
	"fmt"
	"strings"
)

// Source produces the uniform primitive stream in [1,2).
type Source interface {
	// Seed deterministically (re)keys the engine state.
	Seed(seed uint32)

	// Close1Open2 returns the next pseudo-random double in [1,2).
	Close1Open2() float64

	// Algorithm reports which generator backs this Source.
	Algorithm() Algorithm
}

// Algorithm names a uniform generator implementation.
type Algorithm string

const (
	// DSFMT19937 is the double precision SFMT with period 2^19937-1.
	DSFMT19937 Algorithm = "dsfmt19937"
	// PCG is math/rand/v2's 128-bit PCG with DXSM output.
	PCG Algorithm = "pcg"
	// LCG is the ANSI C sample rand(); weak, kept for legacy parity.
	LCG Algorithm = "lcg"

	// Default is the pinned algorithm used when nothing else is configured.
	Default = DSFMT19937
)

// highConst is the IEEE-754 bit pattern of 1.0; OR-ing 52 mantissa bits into
// it yields a double in [1,2).
const (
	highConst = 0x3FF0000000000000
	lowMask   = 0x000FFFFFFFFFFFFF
)

// Algorithms lists every registered algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{DSFMT19937, PCG, LCG}
}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	return string(a)
}

// Weak reports whether the algorithm is only kept for backward compatibility
// and should not be used for new streams.
func (a Algorithm) Weak() bool {
	return a == LCG
}

// ParseAlgorithm resolves a case-insensitive name ("dsfmt19937", "dsfmt",
// "pcg", "lcg") into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dsfmt19937", "dsfmt":
		return DSFMT19937, nil
	case "pcg":
		return PCG, nil
	case "lcg":
		return LCG, nil
	default:
		return "", fmt.Errorf("ParseAlgorithm: %q: %w", name, ErrUnknownAlgorithm)
	}
}

// New returns a fresh, unseeded Source for the given algorithm.
func New(alg Algorithm) (Source, error) {
	switch alg {
	case DSFMT19937:
		return &DSFMT{}, nil
	case PCG:
		return &PCGSource{}, nil
	case LCG:
		return &ANSILCG{}, nil
	default:
		return nil, fmt.Errorf("New: %q: %w", string(alg), ErrUnknownAlgorithm)
	}
}
