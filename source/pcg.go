// SPDX-License-Identifier: MIT
// Package: lvlrand/source
//
// pcg.go — PCG-DXSM (math/rand/v2) adapted to the [1,2) primitive.

package source

import (
	"math"
	"math/rand/v2"
)

// pcgStream is the fixed second seed word; it selects the PCG increment so
// that a 32-bit seed alone determines the stream.
const pcgStream = 0x9e3779b97f4a7c15

// PCGSource adapts math/rand/v2's PCG to Source. The top 52 bits of each
// 64-bit output become the mantissa of a double in [1,2).
type PCGSource struct {
	pcg rand.PCG
}

// NewPCG returns a PCG source seeded with seed.
func NewPCG(seed uint32) *PCGSource {
	p := &PCGSource{}
	p.Seed(seed)
	return p
}

// Algorithm implements Source.
func (p *PCGSource) Algorithm() Algorithm {
	return PCG
}

// Seed implements Source.
func (p *PCGSource) Seed(seed uint32) {
	p.pcg.Seed(uint64(seed), pcgStream)
}

// Close1Open2 implements Source.
func (p *PCGSource) Close1Open2() float64 {
	return math.Float64frombits(highConst | p.pcg.Uint64()>>12)
}
