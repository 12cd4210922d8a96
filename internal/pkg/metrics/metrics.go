// Package metrics holds the Prometheus collectors for seeding and enrichment
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
)

const namespace = "dracolich"

// Record results for the seed counters
const (
	ResultInserted  = "inserted"
	ResultDuplicate = "duplicate"
)

// Seed run outcomes
const (
	OutcomeSeeded  = "seeded"
	OutcomeSkipped = "skipped"
	OutcomeDryRun  = "dry_run"
	OutcomeFailed  = "failed"
)

// Metrics records seed and enrichment activity. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	seedRecords  *prometheus.CounterVec
	seedDuration *prometheus.HistogramVec
	seedRuns     *prometheus.CounterVec
	childQueries *prometheus.CounterVec
	registry     prometheus.Gatherer
}

// New creates the collectors and registers them with reg. A nil reg gets a
// fresh registry.
func New(reg *prometheus.Registry) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		seedRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "seed",
			Name:      "stage_records_total",
			Help:      "Records handled by a seed stage, by result.",
		}, []string{"stage", "result"}),
		seedDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "seed",
			Name:      "stage_duration_seconds",
			Help:      "Time spent in a seed stage.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"stage"}),
		seedRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "seed",
			Name:      "runs_total",
			Help:      "Seed runs, by outcome.",
		}, []string{"outcome"}),
		childQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "enrichment",
			Name:      "child_queries_total",
			Help:      "Child lookups issued while composing detail views, by parent kind.",
		}, []string{"parent"}),
		registry: reg,
	}

	for _, c := range []prometheus.Collector{m.seedRecords, m.seedDuration, m.seedRuns, m.childQueries} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register metrics")
		}
	}

	return m, nil
}

// StageRecords adds n records with the given result to a stage
func (m *Metrics) StageRecords(stage, result string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.seedRecords.WithLabelValues(stage, result).Add(float64(n))
}

// StageDuration observes how long a stage took
func (m *Metrics) StageDuration(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.seedDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// SeedRun counts a finished seed run
func (m *Metrics) SeedRun(outcome string) {
	if m == nil {
		return
	}
	m.seedRuns.WithLabelValues(outcome).Inc()
}

// ChildQuery counts one child lookup made for a parent kind
func (m *Metrics) ChildQuery(parent string) {
	if m == nil {
		return
	}
	m.childQueries.WithLabelValues(parent).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
