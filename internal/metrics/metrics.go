// Package metrics exposes Prometheus instrumentation for the dashboard.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the collectors the server and worker record into.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	ViewComputeTime  prometheus.Histogram
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
	RecordsSubmitted prometheus.Counter
	SyncTotal        *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stockboard",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "stockboard",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		ViewComputeTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "stockboard",
			Name:      "view_compute_seconds",
			Help:      "Time spent filtering, sorting and aggregating the table view.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stockboard",
			Name:      "view_cache_hits_total",
			Help:      "Table partial cache hits.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stockboard",
			Name:      "view_cache_misses_total",
			Help:      "Table partial cache misses.",
		}),
		RecordsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stockboard",
			Name:      "records_submitted_total",
			Help:      "Records accepted into the ledger.",
		}),
		SyncTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stockboard",
			Name:      "record_sync_total",
			Help:      "Record export attempts by result.",
		}, []string{"result"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestsTotal,
		m.RequestDuration,
		m.ViewComputeTime,
		m.CacheHits,
		m.CacheMisses,
		m.RecordsSubmitted,
		m.SyncTotal,
	)
	return m
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one completed HTTP request.
func (m *Metrics) ObserveRequest(route, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(route, status).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}
