// SPDX-License-Identifier: MIT
// Package: lvlrand/source
//
// lcg.go — the ANSI C sample rand() as a legacy fallback.
//
// Only 15 bits of entropy per draw and a period of 2^32. The mapping to [1,2)
// divides by RAND_MAX+1 so that 2.0 is never produced.

package source

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345

	// RandMax is the largest value returned by ANSILCG.Int.
	RandMax = 32767
)

// ANSILCG is the linear congruential generator from the C standard's sample
// rand() implementation.
type ANSILCG struct {
	next uint32
}

// NewLCG returns an ANSI LCG seeded with seed (srand(seed)).
func NewLCG(seed uint32) *ANSILCG {
	return &ANSILCG{next: seed}
}

// Algorithm implements Source.
func (l *ANSILCG) Algorithm() Algorithm {
	return LCG
}

// Seed implements Source.
func (l *ANSILCG) Seed(seed uint32) {
	l.next = seed
}

// Int returns the next value in [0, RandMax], exactly as rand() would.
func (l *ANSILCG) Int() int {
	l.next = l.next*lcgMultiplier + lcgIncrement
	return int((l.next / 65536) % (RandMax + 1))
}

// Close1Open2 implements Source.
func (l *ANSILCG) Close1Open2() float64 {
	return 1.0 + float64(l.Int())/(RandMax+1)
}
