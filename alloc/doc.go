// SPDX-License-Identifier: MIT

// Package alloc acquires large zeroed buffers and reports failures with the
// size of the request instead of aborting the process.
//
// Every request is described as "count × element size = total bytes" and
// rendered in bytes plus binary units, with an optional caller comment, so
// that a failing run explains itself:
//
//	Slice: allocation of 1,000,000,000,000 x 8 bytes = 8,000,000,000,000 bytes
//	(7.3 TiB) failed: comment: reload buffer: alloc: allocation failed
//
// Requests above a Limit fail up front; requests the runtime rejects (length
// out of range) are converted from a panic into ErrAllocation. A genuine
// out-of-memory condition is still fatal in Go and cannot be intercepted.
package alloc
