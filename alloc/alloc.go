// SPDX-License-Identifier: MIT
// Package: lvlrand/alloc
//
// alloc.go — checked slice allocation.
//
// Contract:
//   • n < 0 → ErrNegativeCount; never panics.
//   • n·size > limit → ErrAllocation, nothing is allocated.
//   • Zero-sized element types always succeed.

package alloc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unsafe"

	"github.com/dustin/go-humanize"
)

// ErrAllocation indicates a buffer could not be acquired. The wrapped message
// carries the request size and the caller comment.
var ErrAllocation = errors.New("alloc: allocation failed")

// ErrNegativeCount indicates a negative element count.
var ErrNegativeCount = errors.New("alloc: negative element count")

const methodSlice = "Slice"

// Limit caps the number of bytes a single request may ask for.
type Limit uint64

// DefaultLimit is used by Slice: 1 TiB.
const DefaultLimit Limit = 1 << 40

// Request describes one allocation attempt.
type Request struct {
	Count   int
	Size    uintptr
	Comment string
}

// Bytes returns Count × Size, saturating at math.MaxUint64.
func (r Request) Bytes() uint64 {
	if r.Count <= 0 || r.Size == 0 {
		return 0
	}
	if uint64(r.Count) > math.MaxUint64/uint64(r.Size) {
		return math.MaxUint64
	}
	return uint64(r.Count) * uint64(r.Size)
}

// String renders the request for diagnostics.
func (r Request) String() string {
	total := r.Bytes()
	bytes := strconv.FormatUint(total, 10)
	if total <= math.MaxInt64 {
		bytes = humanize.Comma(int64(total))
	}
	s := fmt.Sprintf("allocation of %s x %d bytes = %s bytes (%s)",
		humanize.Comma(int64(r.Count)), r.Size, bytes, humanize.IBytes(total))
	if r.Comment != "" {
		s += ": comment: " + r.Comment
	}
	return s
}

// Slice allocates a zeroed []T of length n within DefaultLimit.
func Slice[T any](n int, comment string) ([]T, error) {
	return SliceWithin[T](DefaultLimit, n, comment)
}

// SliceWithin allocates a zeroed []T of length n, refusing requests larger
// than limit bytes.
func SliceWithin[T any](limit Limit, n int, comment string) (s []T, err error) {
	var zero T
	req := Request{Count: n, Size: unsafe.Sizeof(zero), Comment: comment}

	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodSlice, n, ErrNegativeCount)
	}
	if req.Bytes() > uint64(limit) {
		return nil, fmt.Errorf("%s: %s failed, limit %s: %w",
			methodSlice, req, humanize.IBytes(uint64(limit)), ErrAllocation)
	}

	// The runtime panics (rather than returning) on lengths it cannot serve.
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("%s: %s failed: %v: %w", methodSlice, req, r, ErrAllocation)
		}
	}()

	return make([]T, n), nil
}
