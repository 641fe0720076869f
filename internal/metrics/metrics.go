// SPDX-License-Identifier: MIT

// Package metrics owns the Prometheus collectors of the service. Each
// Metrics value has a private registry, so tests and multiple servers do not
// collide on the global one.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	OutcomeOK        = "ok"
	OutcomeInvalid   = "invalid"
	OutcomeCancelled = "cancelled"
)

// Metrics bundles the service collectors.
type Metrics struct {
	Registry *prometheus.Registry

	Traces      *prometheus.CounterVec
	StepsPerRun *prometheus.HistogramVec
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// New creates and registers every collector, plus the Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Traces: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rowtrace_traces_total",
				Help: "Traces requested, by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		StepsPerRun: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rowtrace_trace_steps",
				Help:    "Number of steps in produced traces",
				Buckets: prometheus.ExponentialBuckets(4, 2, 8),
			},
			[]string{"operation"},
		),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rowtrace_cache_hits_total",
			Help: "Trace requests served from the cache",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rowtrace_cache_misses_total",
			Help: "Trace requests that had to be computed",
		}),
	}
	m.Registry.MustRegister(
		m.Traces, m.StepsPerRun, m.CacheHits, m.CacheMisses,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Observe records one finished request.
func (m *Metrics) Observe(operation, outcome string, steps int) {
	m.Traces.WithLabelValues(operation, outcome).Inc()
	if outcome == OutcomeOK {
		m.StepsPerRun.WithLabelValues(operation).Observe(float64(steps))
	}
}

// Cache records a cache lookup.
func (m *Metrics) Cache(hit bool) {
	if hit {
		m.CacheHits.Inc()
		return
	}
	m.CacheMisses.Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
