// SPDX-License-Identifier: MIT
// Package: lvlrand/source
//
// dsfmt.go — double precision SIMD-oriented Fast Mersenne Twister (dSFMT), MEXP 19937.
//
// Reference:
//   M. Saito, M. Matsumoto, "A PRNG specialized in double precision floating
//   point numbers using an affine transition", MCQMC 2008.
//   http://www.math.sci.hiroshima-u.ac.jp/~m-mat/MT/SFMT/#dSFMT
//
// Implementation notes:
//   • Portable 128-bit recursion on two uint64 lanes (no SIMD). The output is
//     bit-identical to dsfmt_genrand_close1_open2 after dsfmt_init_gen_rand.
//   • Seeding runs the 1812433253 recurrence over the state viewed as
//     little-endian uint32 words, then masks every double into [1,2) and
//     certifies the period through the lung word.
//   • The state buffer holds N 128-bit blocks of output plus the lung.
//
// Complexity:
//   • Seed: O(N). Close1Open2: O(1) amortized (one full refill per 382 draws).
//   • Space: (N+1)·16 bytes ≈ 3 KiB.

package source

import "math"

// dSFMT-19937 parameters (dSFMT-params19937.h).
const (
	dsfmtMexp = 19937
	dsfmtN    = (dsfmtMexp-128)/104 + 1 // 191 blocks of 128 bits
	dsfmtN64  = dsfmtN * 2              // 382 doubles per refill
	dsfmtPos1 = 117
	dsfmtSL1  = 19
	dsfmtSR   = 12

	dsfmtMsk1 = 0x000ffafffffffb3f
	dsfmtMsk2 = 0x000ffdfffc90fffd
	dsfmtFix1 = 0x90014964b32f4329
	dsfmtFix2 = 0x3b8d12ac548a7c7a
	dsfmtPcv1 = 0x3d84e1ac0dc82880
	dsfmtPcv2 = 0x0000000000000001

	initMultiplier = 1812433253
)

// w128 is one 128-bit block, stored as two 64-bit lanes (low lane first).
type w128 [2]uint64

// DSFMT is the dSFMT-19937 engine. The zero value must be seeded before use.
type DSFMT struct {
	status [dsfmtN + 1]w128 // status[dsfmtN] is the lung
	idx    int              // next double to hand out; dsfmtN64 forces a refill
}

// NewDSFMT returns a dSFMT-19937 engine seeded with seed.
func NewDSFMT(seed uint32) *DSFMT {
	d := &DSFMT{}
	d.Seed(seed)
	return d
}

// Algorithm implements Source.
func (d *DSFMT) Algorithm() Algorithm {
	return DSFMT19937
}

// Seed implements Source (dsfmt_init_gen_rand).
func (d *DSFMT) Seed(seed uint32) {
	// Stage 1: fill the state viewed as (N+1)*4 little-endian 32-bit words.
	var words [(dsfmtN + 1) * 4]uint32
	words[0] = seed
	for i := 1; i < len(words); i++ {
		prev := words[i-1]
		words[i] = initMultiplier*(prev^(prev>>30)) + uint32(i)
	}

	// Stage 2: pack words into 64-bit lanes (word 2k is the low half).
	for i := range d.status {
		d.status[i][0] = uint64(words[4*i]) | uint64(words[4*i+1])<<32
		d.status[i][1] = uint64(words[4*i+2]) | uint64(words[4*i+3])<<32
	}

	// Stage 3: force every output double into [1,2); the lung is untouched.
	for i := 0; i < dsfmtN; i++ {
		d.status[i][0] = d.status[i][0]&lowMask | highConst
		d.status[i][1] = d.status[i][1]&lowMask | highConst
	}

	d.certifyPeriod()
	d.idx = dsfmtN64
}

// certifyPeriod flips one lung bit when the seeded state would fall outside
// the maximal-period orbit.
func (d *DSFMT) certifyPeriod() {
	lung := &d.status[dsfmtN]
	inner := (lung[0] ^ dsfmtFix1) & dsfmtPcv1
	inner ^= (lung[1] ^ dsfmtFix2) & dsfmtPcv2
	for shift := 32; shift > 0; shift >>= 1 {
		inner ^= inner >> uint(shift)
	}
	if inner&1 == 1 {
		return
	}
	// PCV2 has its lowest bit set, so that bit is the one to flip.
	lung[1] ^= 1
}

// Close1Open2 implements Source (dsfmt_genrand_close1_open2).
func (d *DSFMT) Close1Open2() float64 {
	if d.idx >= dsfmtN64 {
		d.refill()
		d.idx = 0
	}
	w := d.status[d.idx/2][d.idx%2]
	d.idx++

	return math.Float64frombits(w)
}

// refill regenerates all N output blocks in place (dsfmt_gen_rand_all).
func (d *DSFMT) refill() {
	lung := d.status[dsfmtN]
	i := 0
	for ; i < dsfmtN-dsfmtPos1; i++ {
		recursion(&d.status[i], &d.status[i+dsfmtPos1], &lung)
	}
	for ; i < dsfmtN; i++ {
		recursion(&d.status[i], &d.status[i+dsfmtPos1-dsfmtN], &lung)
	}
	d.status[dsfmtN] = lung
}

// recursion is the dSFMT affine transition; a is updated in place and the
// lung carries state between blocks.
func recursion(a, b, lung *w128) {
	t0, t1 := a[0], a[1]
	l0, l1 := lung[0], lung[1]

	lung[0] = (t0 << dsfmtSL1) ^ (l1 >> 32) ^ (l1 << 32) ^ b[0]
	lung[1] = (t1 << dsfmtSL1) ^ (l0 >> 32) ^ (l0 << 32) ^ b[1]

	a[0] = (lung[0] >> dsfmtSR) ^ (lung[0] & dsfmtMsk1) ^ t0
	a[1] = (lung[1] >> dsfmtSR) ^ (lung[1] & dsfmtMsk2) ^ t1
}
