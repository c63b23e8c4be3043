// Package metrics provides Prometheus metrics for ghgcalc.
// Collectors register with the default registry; a run can dump them
// as a node-exporter textfile instead of serving them.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Engine ─────────────────────────────────────────────────────────────────

// ProjectionsTotal counts successful projections by terrain.
var ProjectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ghg",
	Name:      "projections_total",
	Help:      "Total population/emission projections computed.",
}, []string{"terrain"})

// ProjectionYears tracks the horizon requested per projection.
var ProjectionYears = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "ghg",
	Name:      "projection_years",
	Help:      "Years passed per projection request.",
	Buckets:   []float64{1, 2, 5, 10, 25, 50, 100},
})

// PerCapitaUndefined counts per-capita requests against zero population.
var PerCapitaUndefined = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "ghg",
	Name:      "per_capita_undefined_total",
	Help:      "Per-capita emission requests with zero population.",
})

// ─── Dataset ────────────────────────────────────────────────────────────────

// RegionsLoaded tracks regions in the active dataset.
var RegionsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "ghg",
	Name:      "regions_loaded",
	Help:      "Number of region snapshots in the active dataset.",
})

// ─── Self-test ──────────────────────────────────────────────────────────────

// SelfTestChecks counts fixture checks by outcome ("pass" or "fail").
var SelfTestChecks = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ghg",
	Name:      "selftest_checks_total",
	Help:      "Self-test fixture checks by outcome.",
}, []string{"outcome"})

// WriteTextfile writes every registered metric to path in the Prometheus
// text exposition format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
