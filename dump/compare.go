// SPDX-License-Identifier: MIT
// Package: lvlrand/dump
//
// compare.go — regenerate a stream from a dump's seed and diff it.
//
// Contract:
//   • The generator is re-initialized with the stored seed.
//   • One Random() draw per stored value, in order.
//   • |stored − drawn| > tol (or NaN) is a mismatch; positions are 0-based.

package dump

import (
	"fmt"
	"io"
	"math"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/lvlrand/prng"
	"github.com/katalvlaran/lvlrand/source"
)

// DefaultTolerance matches the precision of the written values.
const DefaultTolerance = 1e-14

// maxReported bounds the mismatches Report.Err lists individually.
const maxReported = 10

// Mismatch is one differing value.
type Mismatch struct {
	Index  int
	Stored float64
	Drawn  float64
}

func (m Mismatch) Error() string {
	return fmt.Sprintf("value %d: stored %.*g, drawn %.*g, diff %.3g",
		m.Index, Digits, m.Stored, Digits, m.Drawn, math.Abs(m.Stored-m.Drawn))
}

// Report is the outcome of Compare.
type Report struct {
	Seed       uint32
	Algorithm  source.Algorithm
	Tolerance  float64
	Compared   int
	Mismatches []Mismatch
}

// OK reports whether every value matched.
func (r Report) OK() bool { return len(r.Mismatches) == 0 }

// Err aggregates the mismatches, or returns nil when there are none.
// Every listed error wraps ErrMismatch.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}

	var result *multierror.Error
	for i, m := range r.Mismatches {
		if i == maxReported {
			result = multierror.Append(result,
				fmt.Errorf("%d more mismatches: %w", len(r.Mismatches)-maxReported, ErrMismatch))
			break
		}
		result = multierror.Append(result, fmt.Errorf("%w: %w", m, ErrMismatch))
	}

	return result.ErrorOrNil()
}

// Compare reads a dump from r and checks it against g re-initialized with
// the dump's seed.
func Compare(r io.Reader, g *prng.Generator, tol float64) (Report, error) {
	if !(tol >= 0) {
		return Report{}, fmt.Errorf("%s: tolerance %v: %w", methodCompare, tol, ErrBadTolerance)
	}

	seed, stored, err := Read(r)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", methodCompare, err)
	}

	return CompareValues(seed, stored, g, tol), nil
}

// CompareValues is Compare for an already parsed dump.
func CompareValues(seed uint32, stored []float64, g *prng.Generator, tol float64) Report {
	g.Initialize(seed)

	report := Report{
		Seed:      seed,
		Algorithm: g.Algorithm(),
		Tolerance: tol,
		Compared:  len(stored),
	}
	for i, want := range stored {
		got := g.Random()
		if !(math.Abs(want-got) <= tol) {
			report.Mismatches = append(report.Mismatches, Mismatch{Index: i, Stored: want, Drawn: got})
		}
	}

	return report
}
