// SPDX-License-Identifier: MIT

// Package source provides the uniform primitive generators behind lvlrand.
//
// 🚀 What is a Source?
//
//	A Source owns one seeded engine state and produces the single "true"
//	uniform stream of the library: doubles in the half-open interval [1,2).
//	Every other distribution (intervals, Gaussian, directions) is derived
//	from this stream by package prng.
//
// ✨ Algorithms:
//   - DSFMT19937 — double precision SIMD-oriented Fast Mersenne Twister,
//     MEXP 19937, portable recursion. Pinned default: all golden fixtures
//     and numeric dumps are produced with it.
//   - PCG        — math/rand/v2 PCG-DXSM, 52 mantissa bits per draw.
//   - LCG        — the ANSI C sample rand() (15 bits per draw). Weak; kept
//     for parity with legacy dumps only.
//
// ⚙️ Usage:
//
//	src, err := source.New(source.DSFMT19937)
//	if err != nil { ... }
//	src.Seed(0)
//	v := src.Close1Open2() // 1.0305810267693745
//
// Determinism:
//   - For a fixed (Algorithm, seed) pair the stream is fully determined and
//     identical across platforms (no floating-point arithmetic is involved
//     in producing a [1,2) value; bits are assembled directly).
//
// Concurrency:
//   - Sources are NOT safe for concurrent use. Each goroutine owns its own.
package source
