// SPDX-License-Identifier: MIT
// Package: lvlrand/prng
//
// gaussian.go — Marsaglia's polar form of the Box–Muller transform.
//
// Algorithm:
//  1. If a spare deviate is cached, return it and clear the cache (no draws).
//  2. Draw v1, v2 ∈ [-1,1] until 0 < r2 = v1²+v2² < 1 (strictly above machine
//     epsilon so that log(r2) stays finite).
//  3. fac = sqrt(−2·ln(r2)/r2).
//  4. Cache mean + v1·fac·σ; return mean + v2·fac·σ.
//
// Reference: Numerical Recipes in C, 2nd ed., §7.2 (gasdev).
//
// Note: the cached deviate was scaled with the mean/σ of the call that
// produced it.

package prng

import "math"

// machineEpsilon is DBL_EPSILON, the gap between 1 and the next double.
const machineEpsilon = 0x1p-52

// BoxMullerPolar returns a normal deviate with the given mean and standard
// deviation. Every accepted rejection round yields two deviates: one is
// returned, the other served by the next call.
func (g *Generator) BoxMullerPolar(mean, stdDev float64) float64 {
	if g.gauss.ok {
		g.gauss.ok = false
		return g.gauss.value
	}

	var v1, v2, r2 float64
	for {
		v1 = g.CloseN1Close1()
		v2 = g.CloseN1Close1()
		r2 = v1*v1 + v2*v2
		if r2 < 1.0 && r2 > machineEpsilon {
			break
		}
	}

	fac := math.Sqrt(-2.0 * math.Log(r2) / r2)
	g.gauss = gaussCache{value: mean + v1*fac*stdDev, ok: true}

	return mean + v2*fac*stdDev
}

// Gasdev returns a standard normal deviate (mean 0, variance 1).
func (g *Generator) Gasdev() float64 {
	return g.BoxMullerPolar(0.0, 1.0)
}
