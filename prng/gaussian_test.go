package prng_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlrand/prng"
	"github.com/katalvlaran/lvlrand/source"
)

// scripted returns a generator whose primitive stream is values, repeated.
func scripted(t *testing.T, values ...float64) *prng.Generator {
	t.Helper()
	g := prng.New(prng.WithSourceFactory(func() source.Source {
		return &countingSource{values: values}
	}))
	g.Initialize(0)
	return g
}

// TestGasdev_Statistics checks mean and variance over one million deviates.
func TestGasdev_Statistics(t *testing.T) {
	if testing.Short() {
		t.Skip("draws 1e6 deviates")
	}
	const n = 1_000_000
	tol := 1e-2

	g := prng.NewSeeded(0)
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		v := g.Gasdev()
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	variance := sumSq/n - mean*mean

	assert.InDelta(t, 0.0, mean, tol, "sample mean")
	assert.InDelta(t, 1.0, variance, tol, "sample variance")
}

// TestBoxMullerPolar_Shifted checks that mean and standard deviation are
// applied to both deviates of a pair.
func TestBoxMullerPolar_Shifted(t *testing.T) {
	const n = 200000
	mean, sigma := 0.5, 0.25

	g := prng.NewSeeded(31)
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		v := g.BoxMullerPolar(mean, sigma)
		sum += v
		sumSq += v * v
	}
	m := sum / n
	sd := sumSq/n - m*m

	assert.InDelta(t, mean, m, 1e-2)
	assert.InDelta(t, sigma*sigma, sd, 1e-2)
}

// TestGasdev_CachePairing verifies the second deviate of a pair consumes no
// primitive draws and the pair order (v2 first, then v1).
func TestGasdev_CachePairing(t *testing.T) {
	g := prng.NewSeeded(0)

	first := g.Gasdev()
	assert.Equal(t, uint64(2), g.CallCount(), "one accepted pair of CloseN1Close1 draws")
	assert.True(t, g.Snapshot().GaussianCached)

	second := g.Gasdev()
	assert.Equal(t, uint64(2), g.CallCount(), "cached deviate is free")
	assert.False(t, g.Snapshot().GaussianCached)

	third := g.Gasdev()
	fourth := g.Gasdev()
	assert.Equal(t, uint64(4), g.CallCount())

	// Last-ulp differences in math.Log across platforms are tolerated.
	assert.InDelta(t, -0.11312158219325864, first, 1e-12)
	assert.InDelta(t, -0.67339221230879, second, 1e-12)
	assert.InDelta(t, 1.4266167068179794, third, 1e-12)
	assert.InDelta(t, 0.5330824484205526, fourth, 1e-12)
}

// TestGasdev_InstanceScopedCache verifies one generator's spare deviate never
// leaks into another.
func TestGasdev_InstanceScopedCache(t *testing.T) {
	a := prng.NewSeeded(0)
	b := prng.NewSeeded(0)

	a.Gasdev() // a now holds a spare deviate
	bFirst := b.Gasdev()
	assert.Equal(t, uint64(2), b.CallCount(), "b must draw its own pair")
	assert.InDelta(t, -0.11312158219325864, bFirst, 1e-12)
}

// TestBoxMullerPolar_Rejections drives both rejection branches with a
// scripted stream. Primitive p maps to CloseN1Close1 as 4p-5 when p <= 1.5:
// 1.25 → 0, 1.5 → 1, 1.375 → 0.5, 1.125 → -0.5.
func TestBoxMullerPolar_Rejections(t *testing.T) {
	fac := math.Sqrt(-2.0 * math.Log(0.5) / 0.5)

	cases := map[string][]float64{
		"r2 at origin":      {1.25, 1.25, 1.375, 1.125},
		"r2 on unit circle": {1.5, 1.25, 1.375, 1.125},
		"r2 outside disc":   {1.5, 1.5, 1.375, 1.125},
	}
	for name, stream := range cases {
		t.Run(name, func(t *testing.T) {
			g := scripted(t, stream...)

			got := g.BoxMullerPolar(1.0, 2.0)
			require.Equal(t, uint64(4), g.CallCount(), "rejected pair must be redrawn")
			assert.InDelta(t, 1.0-0.5*fac*2.0, got, 1e-15)
			assert.True(t, g.Snapshot().GaussianCached)

			assert.InDelta(t, 1.0+0.5*fac*2.0, g.BoxMullerPolar(1.0, 2.0), 1e-15)
			assert.Equal(t, uint64(4), g.CallCount(), "cached deviate consumes no draws")
			assert.False(t, g.Snapshot().GaussianCached)
		})
	}
}
