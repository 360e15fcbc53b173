// SPDX-License-Identifier: MIT
// Package: lvlrand/bitsfmt
//
// Package bitsfmt renders the raw bit patterns of integers and IEEE-754
// floating-point values, most significant bit first.
//
// Floats are split into their fields with a single space:
//
//	Float64(1.0) == "0 01111111111 0000000000000000000000000000000000000000000000000000"
//	Float32(1.0) == "0 01111111 00000000000000000000000"
//
// Integers are rendered at their full width in two's complement, so
// Integer(int8(-1)) is "11111111".
package bitsfmt

import (
	"math"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Field widths of the IEEE-754 binary64 and binary32 formats.
const (
	float64Exponent = 11
	float32Exponent = 8
)

// Integer returns the bits of n at the width of T.
func Integer[T constraints.Integer](n T) string {
	width := int(unsafe.Sizeof(n)) * 8

	// uint64 conversion sign-extends signed values; only the low width bits are printed.
	return render(uint64(n), width, nil)
}

// Float64 returns the bits of d as "sign exponent mantissa".
func Float64(d float64) string {
	return render(math.Float64bits(d), 64, []int{1, 1 + float64Exponent})
}

// Float32 returns the bits of f as "sign exponent mantissa".
func Float32(f float32) string {
	return render(uint64(math.Float32bits(f)), 32, []int{1, 1 + float32Exponent})
}

// render writes width bits of v, MSB first, inserting a space before each
// position listed in breaks (positions counted from the MSB).
func render(v uint64, width int, breaks []int) string {
	var sb strings.Builder
	sb.Grow(width + len(breaks))

	next := 0
	for b := 0; b < width; b++ {
		if next < len(breaks) && b == breaks[next] {
			sb.WriteByte(' ')
			next++
		}
		if v>>(width-1-b)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
