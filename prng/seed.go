// SPDX-License-Identifier: MIT
// Package: lvlrand/prng
//
// seed.go — seed derivation from wall-clock time and process identity.

package prng

import (
	"os"
	"time"
)

// seedEpochOffset shifts the epoch forward by ~30 years (30×365 days) so the
// microsecond count spends its bits on recent history.
const seedEpochOffset = 30 * 365 * 24 * 60 * 60 // 946080000 s

// DeriveSeed mixes a timestamp and a process ID into a 32-bit seed:
//
//	seed = pid · ((unix − offset)·10⁶ + µs)   mod 2³²
//
// Two processes started in the same microsecond still get different seeds
// through their PIDs.
func DeriveSeed(now time.Time, pid int) uint32 {
	micros := uint64(now.Unix()-seedEpochOffset)*1_000_000 + uint64(now.Nanosecond()/1000)
	return uint32(uint64(pid) * micros)
}

// TimeSeed is DeriveSeed applied to the current time and process.
func TimeSeed() uint32 {
	return DeriveSeed(time.Now(), os.Getpid())
}
