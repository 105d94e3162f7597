// Package metrics defines the Prometheus collectors exported by the API
// server. Collectors are registered on a caller-supplied registry so tests can
// use a fresh one per test.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors for HTTP, repository and persistence
// activity.
type Metrics struct {
	// Requests counts HTTP requests by method, chi route pattern and status.
	Requests *prometheus.CounterVec

	// RequestDuration observes request latency by method and route pattern.
	RequestDuration *prometheus.HistogramVec

	// Mutations counts repository mutations by operation and outcome
	// ("applied" or "missed").
	Mutations *prometheus.CounterVec

	// Flushes counts full-collection writes by result ("ok" or "error").
	Flushes *prometheus.CounterVec

	// FlushDuration observes how long one full-collection write takes.
	FlushDuration prometheus.Histogram

	// FlushBytes records the size of the most recent successful write.
	FlushBytes prometheus.Gauge

	// Trips is the number of trips currently held in memory.
	Trips prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tripplanner",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tripplanner",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tripplanner",
			Name:      "repository_mutations_total",
			Help:      "Repository mutations by operation and outcome.",
		}, []string{"op", "outcome"}),
		Flushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tripplanner",
			Name:      "persistence_flushes_total",
			Help:      "Full-collection writes to durable storage by result.",
		}, []string{"result"}),
		FlushDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tripplanner",
			Name:      "persistence_flush_duration_seconds",
			Help:      "Duration of full-collection writes to durable storage.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		FlushBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tripplanner",
			Name:      "persistence_flush_bytes",
			Help:      "Size in bytes of the last collection written.",
		}),
		Trips: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tripplanner",
			Name:      "trips",
			Help:      "Trips held by the repository.",
		}),
	}
	reg.MustRegister(m.Requests, m.RequestDuration, m.Mutations, m.Flushes, m.FlushDuration, m.FlushBytes, m.Trips)
	return m
}

// Outcome labels for Mutations.
const (
	OutcomeApplied = "applied"
	OutcomeMissed  = "missed"
)

// ObserveMutation records one repository mutation. Safe on a nil receiver so
// metrics stay optional.
func (m *Metrics) ObserveMutation(op string, applied bool) {
	if m == nil {
		return
	}
	outcome := OutcomeMissed
	if applied {
		outcome = OutcomeApplied
	}
	m.Mutations.WithLabelValues(op, outcome).Inc()
}

// ObserveRequest records one served HTTP request. Safe on a nil receiver.
func (m *Metrics) ObserveRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(seconds)
}
