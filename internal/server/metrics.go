package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus instruments exported by the server.
// Each Metrics instance owns its registry so tests can create servers
// without tripping duplicate-registration panics.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestsTotal  prometheus.Counter
	activeRequests prometheus.Gauge
	solveDuration  prometheus.Histogram
	solutionsTotal prometheus.Counter
	statesTotal    prometheus.Counter
}

// NewMetrics creates the server metrics set with Go runtime collectors
// attached.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		registry: registry,
		requestsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "nqueens_requests_total",
			Help: "Total number of HTTP requests handled.",
		}),
		activeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Name: "nqueens_active_requests",
			Help: "Number of HTTP requests currently in flight.",
		}),
		solveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "nqueens_solve_duration_seconds",
			Help:    "Wall-clock duration of solve runs.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		solutionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "nqueens_solutions_found_total",
			Help: "Total solutions found across all solve runs.",
		}),
		statesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "nqueens_states_explored_total",
			Help: "Total board states explored across all solve runs.",
		}),
	}

	registry.MustRegister(collectors.NewGoCollector())
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests marks a request as started.
func (m *Metrics) IncrementActiveRequests() {
	m.requestsTotal.Inc()
	m.activeRequests.Inc()
}

// DecrementActiveRequests marks a request as finished.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// ObserveSolve records the outcome of a completed solve run.
func (m *Metrics) ObserveSolve(durationSeconds float64, solutionsFound int, statesExplored uint64) {
	m.solveDuration.Observe(durationSeconds)
	m.solutionsTotal.Add(float64(solutionsFound))
	m.statesTotal.Add(float64(statesExplored))
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
