// SPDX-License-Identifier: MIT
// Package: lvlrand/prng
//
// direction.go — uniform directions in three dimensions (Marsaglia, 1972).
//
// Pick (y1,y2) uniformly in the unit disc by rejection from [-1,1]², then map
//
//	x = 2·y1·√(1−r2),  y = 2·y2·√(1−r2),  z = 1 − 2·r2
//
// which is uniform on the unit sphere.
//
// Reference: F. Vesely, Computational Physics: An Introduction, 2nd ed.,
// §3.2 "Other distributions", p. 67.

package prng

import "math"

// Vec3 is a 3D vector.
type Vec3 [3]float64

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Direction returns a uniformly distributed unit vector. Its norm is 1 up to
// floating-point rounding (within [0.9999, 1.0001]).
func (g *Generator) Direction() Vec3 {
	var y1, y2, r2 float64
	for {
		y1 = g.CloseN1Close1()
		y2 = g.CloseN1Close1()
		r2 = y1*y1 + y2*y2
		if r2 < 1.0 {
			break
		}
	}

	s := math.Sqrt(1.0 - r2)
	return Vec3{2.0 * y1 * s, 2.0 * y2 * s, 1.0 - 2.0*r2}
}
