// Package metrics holds the Prometheus collectors for the proxy.
//
// Collectors live on a private registry so tests can build as many
// instances as they like without duplicate-registration panics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	UpstreamRequests *prometheus.CounterVec
	UpstreamLatency  *prometheus.HistogramVec
	HTTPRequests     *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		UpstreamRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_requests_total",
				Help: "Number of requests sent to the DNS provider.",
			},
			[]string{"operation", "outcome"},
		),
		UpstreamLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "Latency of requests sent to the DNS provider.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Number of requests served by the proxy.",
			},
			[]string{"method", "route", "status"},
		),
	}

	m.registry.MustRegister(
		m.UpstreamRequests,
		m.UpstreamLatency,
		m.HTTPRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveUpstream records one provider call. Safe on a nil receiver.
func (m *Metrics) ObserveUpstream(operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(operation, outcome).Inc()
	m.UpstreamLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveHTTP records one served request. Safe on a nil receiver.
func (m *Metrics) ObserveHTTP(method, route string, status int) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the exposition format for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
