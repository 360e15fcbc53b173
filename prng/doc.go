// SPDX-License-Identifier: MIT

// Package prng is the deterministic pseudo-random number engine of lvlrand.
//
// 🚀 What does it provide?
//
//	One Generator owns one seeded uniform Source (package source) and
//	derives everything else from its single primitive, Close1Open2 ∈ [1,2):
//	  • interval transforms: [0,1), (0,1], [-1,1), [0,1], [-1,1]
//	  • a Box–Muller (polar form) Gaussian sampler with a one-deviate cache
//	  • Marsaglia's rejection method for uniform directions on the unit sphere
//	  • seed derivation from wall-clock time and process identity
//
// ✨ Guarantees:
//   - Determinism: for a fixed (algorithm, seed) every method returns the
//     same sequence, across instances and re-initializations.
//   - Exact draw counts: each transform consumes a documented number of
//     primitive draws (CallCount exposes the running total).
//   - No hidden globals: the Gaussian cache is owned by the Generator.
//
// ⚙️ Usage:
//
//	g := prng.New()          // dSFMT-19937, silent
//	g.Initialize(0)
//	u := g.Random()          // (0,1]
//	z := g.Gasdev()          // N(0,1)
//	dir := g.Direction()     // |dir| ≈ 1
//
// Lifecycle:
//
//	New → Initialize / InitializeFromTime → draws … → Close
//
// Drawing before Initialize (or after Close) is a programming error: the
// Generator panics with an error wrapping ErrUninitialized.
//
// Concurrency:
//
//	A Generator is NOT safe for concurrent use. Give every goroutine its own
//	instance (with its own seed) or guard a shared one with a mutex.
package prng
