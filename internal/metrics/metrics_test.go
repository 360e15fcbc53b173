package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlrand/dump"
	"github.com/katalvlaran/lvlrand/internal/metrics"
	"github.com/katalvlaran/lvlrand/prng"
	"github.com/katalvlaran/lvlrand/source"
)

func TestGeneratorCollector(t *testing.T) {
	c := metrics.NewGeneratorCollector()

	g := prng.NewSeeded(17)
	g.CallN(5)
	c.Track("main", g)
	c.Track("idle", prng.New(prng.WithAlgorithm(source.LCG)))

	expected := `
# HELP lvlrand_generator_draws_total Primitive uniform draws consumed since the last initialization.
# TYPE lvlrand_generator_draws_total counter
lvlrand_generator_draws_total{algorithm="dsfmt19937",generator="main"} 5
lvlrand_generator_draws_total{algorithm="lcg",generator="idle"} 0
# HELP lvlrand_generator_seed Seed the generator was last initialized with.
# TYPE lvlrand_generator_seed gauge
lvlrand_generator_seed{algorithm="dsfmt19937",generator="main"} 17
lvlrand_generator_seed{algorithm="lcg",generator="idle"} 0
# HELP lvlrand_generator_initialized Whether the generator is ready to draw (1) or not (0).
# TYPE lvlrand_generator_initialized gauge
lvlrand_generator_initialized{algorithm="dsfmt19937",generator="main"} 1
lvlrand_generator_initialized{algorithm="lcg",generator="idle"} 0
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected)))

	c.Untrack("idle")
	assert.Equal(t, 3, testutil.CollectAndCount(c))
}

func TestRegistry_Textfile(t *testing.T) {
	r := metrics.NewRegistry()
	g := prng.NewSeeded(0)
	r.Generators().Track("compare", g)

	report := dump.CompareValues(0, []float64{0.5, 0.7868596799329879}, g, dump.DefaultTolerance)
	r.ObserveReport(report)

	path := filepath.Join(t.TempDir(), "lvlrand.prom")
	require.NoError(t, r.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, `lvlrand_generator_draws_total{algorithm="dsfmt19937",generator="compare"} 2`)
	assert.Contains(t, text, "lvlrand_dump_values 2")
	assert.Contains(t, text, "lvlrand_dump_mismatches 1")

	assert.Error(t, r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom")))
}

func TestRegistry_ObserveDump(t *testing.T) {
	r := metrics.NewRegistry()
	r.ObserveDump(100000)

	families, err := r.Gatherer().Gather()
	require.NoError(t, err)
	var found bool
	for _, mf := range families {
		if mf.GetName() == metrics.MetricDumpValues {
			found = true
			assert.Equal(t, 100000.0, mf.GetMetric()[0].GetGauge().GetValue())
		}
	}
	assert.True(t, found)
}
