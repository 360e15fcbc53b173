// SPDX-License-Identifier: MIT
// Package: lvlrand/internal/metrics
//
// Package metrics exposes generator and dump-validation state as Prometheus
// metrics and writes them in the node_exporter textfile format.
//
// Generators are read at collection time through prng.Generator.Snapshot, so
// the draw path carries no instrumentation. Collection must not run
// concurrently with draws on the same generator.
package metrics

import (
	"fmt"
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvlrand/dump"
	"github.com/katalvlaran/lvlrand/prng"
)

const (
	MetricGeneratorDraws       = "lvlrand_generator_draws_total"
	MetricGeneratorSeed        = "lvlrand_generator_seed"
	MetricGeneratorInitialized = "lvlrand_generator_initialized"
	MetricDumpValues           = "lvlrand_dump_values"
	MetricDumpMismatches       = "lvlrand_dump_mismatches"
)

var generatorLabels = []string{"generator", "algorithm"}

var (
	drawsDesc = prometheus.NewDesc(
		MetricGeneratorDraws,
		"Primitive uniform draws consumed since the last initialization.",
		generatorLabels, nil,
	)
	seedDesc = prometheus.NewDesc(
		MetricGeneratorSeed,
		"Seed the generator was last initialized with.",
		generatorLabels, nil,
	)
	initializedDesc = prometheus.NewDesc(
		MetricGeneratorInitialized,
		"Whether the generator is ready to draw (1) or not (0).",
		generatorLabels, nil,
	)
)

// GeneratorCollector reports the state of named generators.
type GeneratorCollector struct {
	mu   sync.Mutex
	gens map[string]*prng.Generator
}

var _ prometheus.Collector = (*GeneratorCollector)(nil)

// NewGeneratorCollector returns an empty collector.
func NewGeneratorCollector() *GeneratorCollector {
	return &GeneratorCollector{gens: make(map[string]*prng.Generator)}
}

// Track adds g under name, replacing any generator already tracked there.
func (c *GeneratorCollector) Track(name string, g *prng.Generator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[name] = g
}

// Untrack stops reporting name.
func (c *GeneratorCollector) Untrack(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.gens, name)
}

// Describe implements prometheus.Collector.
func (c *GeneratorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- drawsDesc
	ch <- seedDesc
	ch <- initializedDesc
}

// Collect implements prometheus.Collector.
func (c *GeneratorCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.gens))
	for name := range c.gens {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		st := c.gens[name].Snapshot()
		labels := []string{name, st.Algorithm.String()}

		initialized := 0.0
		if st.Initialized {
			initialized = 1
		}

		ch <- prometheus.MustNewConstMetric(drawsDesc, prometheus.CounterValue, float64(st.Calls), labels...)
		ch <- prometheus.MustNewConstMetric(seedDesc, prometheus.GaugeValue, float64(st.Seed), labels...)
		ch <- prometheus.MustNewConstMetric(initializedDesc, prometheus.GaugeValue, initialized, labels...)
	}
}

// Registry bundles the lvlrand collectors on a private registry.
type Registry struct {
	reg        *prometheus.Registry
	generators *GeneratorCollector
	values     prometheus.Gauge
	mismatches prometheus.Gauge
}

// NewRegistry creates a registry with the generator collector and the dump
// gauges registered.
func NewRegistry() *Registry {
	r := &Registry{
		reg:        prometheus.NewRegistry(),
		generators: NewGeneratorCollector(),
		values: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: MetricDumpValues,
			Help: "Values in the last written or compared dump.",
		}),
		mismatches: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: MetricDumpMismatches,
			Help: "Mismatching values found by the last dump comparison.",
		}),
	}
	r.reg.MustRegister(r.generators, r.values, r.mismatches)

	return r
}

// Generators returns the generator collector.
func (r *Registry) Generators() *GeneratorCollector { return r.generators }

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// ObserveDump records the size of a written dump.
func (r *Registry) ObserveDump(n int) {
	r.values.Set(float64(n))
}

// ObserveReport records the outcome of a dump comparison.
func (r *Registry) ObserveReport(report dump.Report) {
	r.values.Set(float64(report.Compared))
	r.mismatches.Set(float64(len(report.Mismatches)))
}

// WriteTextfile atomically writes all metrics to path.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write textfile %s: %w", path, err)
	}
	return nil
}
