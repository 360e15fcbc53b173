// SPDX-License-Identifier: MIT
// Package: lvlrand/prng
//
// intervals.go — bounded intervals derived from the [1,2) primitive.
//
// Draw counts (load-bearing for reproducibility):
//
//	Close0Open1    p − 1        [0,1)   1 draw
//	Open0Close1    2 − p        (0,1]   1 draw
//	CloseN1Open1   2p − 3       [−1,1)  1 draw
//	Close0Close1   rejection    [0,1]   ≥1 draws, 2 expected
//	CloseN1Close1  2r − 1       [−1,1]  as Close0Close1
//
// p lies on the 2^-52 grid of [1,2), so p−1, 2−p and 2p−3 are exact.

package prng

// Close0Open1 returns a value in [0,1).
func (g *Generator) Close0Open1() float64 {
	return g.Close1Open2() - 1.0
}

// Open0Close1 returns a value in (0,1].
func (g *Generator) Open0Close1() float64 {
	return 2.0 - g.Close1Open2()
}

// CloseN1Open1 returns a value in [-1,1).
func (g *Generator) CloseN1Open1() float64 {
	return 2.0*g.Close1Open2() - 3.0
}

// Close0Close1 returns a value in [0,1]. Values of 2·[0,1) above one are
// rejected; each retry draws a new primitive.
func (g *Generator) Close0Close1() float64 {
	for {
		r := 2.0 * g.Close0Open1()
		if r <= 1.0 {
			return r
		}
	}
}

// CloseN1Close1 returns a value in [-1,1].
func (g *Generator) CloseN1Close1() float64 {
	return 2.0*g.Close0Close1() - 1.0
}

// Random is the general purpose draw: a value in (0,1], never zero, so it is
// safe as a log argument or a divisor.
func (g *Generator) Random() float64 {
	return g.Open0Close1()
}

// CallN draws n values with Random and returns the last one. It returns 0
// without drawing when n <= 0. Useful to fast-forward a stream.
func (g *Generator) CallN(n int) float64 {
	var last float64
	for i := 0; i < n; i++ {
		last = g.Random()
	}
	return last
}
