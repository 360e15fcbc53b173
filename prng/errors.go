// SPDX-License-Identifier: MIT
// Package: lvlrand/prng
//
// errors.go — sentinel errors for the prng package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Context ("<Method>: ...") is attached with %w at the failure site.
//   • ErrUninitialized is the only panic value: drawing from an uninitialized
//     Generator is a programming error, not a runtime condition.

package prng

import (
	"errors"
	"fmt"
)

// ErrUninitialized indicates a draw was requested before Initialize or after
// Close. It is delivered as a panic value wrapped with the method name.
// Usage: if err, ok := recover().(error); ok && errors.Is(err, ErrUninitialized) { ... }.
var ErrUninitialized = errors.New("prng: generator used before Initialize")

// Method names used as error context.
const (
	methodClose1Open2 = "Close1Open2"
)

// uninitialized builds the panic value for a draw on an unusable generator.
func uninitialized(method string) error {
	return fmt.Errorf("%s: %w", method, ErrUninitialized)
}
