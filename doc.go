// Package lvlrand is a deterministic pseudo-random engine for numerical
// simulation: reproducible uniform streams, interval transforms, Gaussian
// and isotropic-direction samplers, with the tooling to prove a stream did
// not change between builds.
//
// 🚀 What is lvlrand?
//
//	A small, dependency-light library that brings together:
//		• Uniform engines: dSFMT-19937 (default), PCG, ANSI C LCG (legacy)
//		• Interval transforms: [0,1), (0,1], [-1,1), [0,1], [-1,1]
//		• Gaussian sampling: Box–Muller polar with a per-generator cache
//		• Direction sampling: Marsaglia's method on the unit sphere
//		• Seed derivation from wall clock and process ID
//
// ✨ Why choose lvlrand?
//
//   - Reproducible – same seed and algorithm, same stream, on every platform
//   - Explicit state – every Generator owns its engine and Gaussian cache
//   - Checkable – numeric dumps, comparison with tolerance, histograms
//
// Packages:
//
//	source/   — uniform engines producing doubles in [1,2)
//	prng/     — Generator: lifecycle, interval transforms, samplers, seeds
//	dump/     — plain-text dumps: write, read, compare, summarize, histogram
//	alloc/    — checked buffer allocation with size diagnostics
//	bitsfmt/  — raw bit rendering of integers and IEEE-754 values
//	cmd/lvlrand — generate / compare / histogram / draw from the shell
//
// Quick example:
//
//	g := prng.NewSeeded(42)
//	x := g.Close0Open1()   // [0,1)
//	z := g.Gasdev()        // N(0,1)
//	v := g.Direction()     // |v| == 1
//
//	go install github.com/katalvlaran/lvlrand/cmd/lvlrand@latest
package lvlrand
