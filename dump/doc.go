// SPDX-License-Identifier: MIT

// Package dump reads, writes and validates plain-text numeric dumps of a
// prng.Generator stream.
//
// A dump is line-oriented text:
//
//	<seed>          decimal uint32
//	<value>         one Random() draw per line, 14 significant digits
//	...
//
// Typical flow:
//
//	g := prng.NewSeeded(0)
//	f, _ := os.Create(dump.FileName(100000))
//	_ = dump.Generate(f, g, 100000)
//
//	// later, possibly with another build:
//	report, _ := dump.Compare(f, prng.New(), dump.DefaultTolerance)
//	if err := report.Err(); err != nil { ... }
//
// Summarize and Histogram describe a value set for quick visual checks of
// uniformity; they do not plot.
package dump
