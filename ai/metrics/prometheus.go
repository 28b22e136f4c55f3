// Package metrics provides Prometheus metrics export for the AI gateway.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusExporter exports gateway metrics in Prometheus format.
type PrometheusExporter struct {
	registry *prometheus.Registry

	// Provider attempt metrics
	providerRequests *prometheus.CounterVec
	providerLatency  *prometheus.HistogramVec

	// Dispatch metrics
	fallbackAttempts prometheus.Counter
	mockDegradations *prometheus.CounterVec
}

// Config configures the Prometheus exporter.
type Config struct {
	// Registry to use (if nil, creates a new one)
	Registry *prometheus.Registry

	// Buckets for latency histograms (in seconds)
	LatencyBuckets []float64
}

// DefaultConfig returns default Prometheus configuration.
func DefaultConfig() Config {
	return Config{
		LatencyBuckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	}
}

// NewPrometheusExporter creates a new Prometheus metrics exporter.
func NewPrometheusExporter(cfg Config) *PrometheusExporter {
	if len(cfg.LatencyBuckets) == 0 {
		cfg.LatencyBuckets = DefaultConfig().LatencyBuckets
	}

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	e := &PrometheusExporter{registry: registry}

	e.providerRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chatgate",
			Subsystem: "ai",
			Name:      "provider_requests_total",
			Help:      "Total number of provider invocations",
		},
		[]string{"provider", "outcome"},
	)

	e.providerLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "chatgate",
			Subsystem: "ai",
			Name:      "provider_latency_seconds",
			Help:      "Provider invocation latency in seconds",
			Buckets:   cfg.LatencyBuckets,
		},
		[]string{"provider"},
	)

	e.fallbackAttempts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "chatgate",
			Subsystem: "ai",
			Name:      "fallback_attempts_total",
			Help:      "Total number of secondary-provider attempts after a primary failure",
		},
	)

	e.mockDegradations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chatgate",
			Subsystem: "ai",
			Name:      "mock_degradations_total",
			Help:      "Total number of requests answered by the mock responder",
		},
		[]string{"reason"},
	)

	registry.MustRegister(
		e.providerRequests,
		e.providerLatency,
		e.fallbackAttempts,
		e.mockDegradations,
	)

	return e
}

// RecordProviderRequest records one adapter invocation.
// outcome is "success" or the canonical error kind.
func (e *PrometheusExporter) RecordProviderRequest(provider, outcome string, latency time.Duration) {
	e.providerRequests.WithLabelValues(provider, outcome).Inc()
	e.providerLatency.WithLabelValues(provider).Observe(latency.Seconds())
}

// RecordFallbackAttempt records one secondary-provider attempt.
func (e *PrometheusExporter) RecordFallbackAttempt() {
	e.fallbackAttempts.Inc()
}

// RecordMockDegradation records a request that degraded to the mock responder.
func (e *PrometheusExporter) RecordMockDegradation(reason string) {
	e.mockDegradations.WithLabelValues(reason).Inc()
}

// Handler returns an HTTP handler serving the registry in Prometheus format.
func (e *PrometheusExporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}
