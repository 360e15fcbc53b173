// SPDX-License-Identifier: MIT
// Package: lvlrand/dump
//
// errors.go — sentinel errors for dump parsing and validation.
//
// Callers branch with errors.Is; messages carry the operation and position.

package dump

import "errors"

var (
	// ErrEmpty indicates the input has no seed line.
	ErrEmpty = errors.New("dump: empty input")

	// ErrMalformed indicates a seed or value token that does not parse.
	ErrMalformed = errors.New("dump: malformed input")

	// ErrMismatch marks a stored value that differs from the regenerated one.
	ErrMismatch = errors.New("dump: value mismatch")

	// ErrBadTolerance indicates a negative or NaN comparison tolerance.
	ErrBadTolerance = errors.New("dump: invalid tolerance")

	// ErrBadBins indicates an unusable histogram layout (bins < 1 or lo >= hi).
	ErrBadBins = errors.New("dump: invalid histogram bins")
)

const (
	methodWrite     = "Write"
	methodGenerate  = "Generate"
	methodRead      = "Read"
	methodCompare   = "Compare"
	methodHistogram = "Histogram"
)
