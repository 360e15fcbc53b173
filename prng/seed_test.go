package prng_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlrand/prng"
)

// TestDeriveSeed checks the formula on fixed inputs.
func TestDeriveSeed(t *testing.T) {
	// 30×365 days after the Unix epoch, plus 2 s and 5 µs.
	now := time.Unix(946080000+2, 5000)
	assert.Equal(t, uint32(2_000_005), prng.DeriveSeed(now, 1))
	assert.Equal(t, uint32(6_000_015), prng.DeriveSeed(now, 3))

	// Wrap-around: only the low 32 bits survive.
	now = time.Unix(946080000+5000, 0) // 5e9 µs
	want := uint32(uint64(5_000_000_000) * 7 % (1 << 32))
	assert.Equal(t, want, prng.DeriveSeed(now, 7))
}

// TestDeriveSeed_PIDSeparates verifies distinct processes at the same instant
// get distinct seeds.
func TestDeriveSeed_PIDSeparates(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 123456000, time.UTC)
	assert.NotEqual(t, prng.DeriveSeed(now, 100), prng.DeriveSeed(now, 101))
}

// TestDeriveSeed_MicrosecondResolution verifies sub-microsecond noise is ignored.
func TestDeriveSeed_MicrosecondResolution(t *testing.T) {
	base := time.Date(2026, 10, 19, 12, 0, 0, 1_000, time.UTC)
	assert.Equal(t, prng.DeriveSeed(base, 42), prng.DeriveSeed(base.Add(999*time.Nanosecond), 42))
	assert.NotEqual(t, prng.DeriveSeed(base, 42), prng.DeriveSeed(base.Add(time.Microsecond), 42))
}
