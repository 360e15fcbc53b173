// SPDX-License-Identifier: MIT
// Package: lvlrand/source
//
// errors.go — sentinel errors for the source package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Context is attached at the call site with %w.

package source

import "errors"

// ErrUnknownAlgorithm indicates that an algorithm name or value is not one of
// the registered uniform generators (see Algorithms).
// Usage: if errors.Is(err, ErrUnknownAlgorithm) { /* list source.Algorithms() */ }.
var ErrUnknownAlgorithm = errors.New("source: unknown algorithm")
