// Package metrics provides Prometheus metrics for the version server
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "versioneditor"

// Metrics holds all Prometheus metrics of the server
type Metrics struct {
	registry *prometheus.Registry

	// HTTP request metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Version metrics
	VersionsSavedTotal   prometheus.Counter
	VersionsDeletedTotal prometheus.Counter
	WordsAdded           prometheus.Histogram
	WordsRemoved         prometheus.Histogram
	SaveConflictsTotal   prometheus.Counter

	// Storage metrics
	StoreOperationsTotal   *prometheus.CounterVec
	StoreOperationDuration *prometheus.HistogramVec

	// Server metrics
	ServerStartTime time.Time
}

// New creates all metrics and registers them on a dedicated registry
// together with the Go runtime and process collectors
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	m := &Metrics{
		registry:        reg,
		ServerStartTime: time.Now(),
	}

	m.HTTPRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	m.HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	m.HTTPRequestsInFlight = factory.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	m.VersionsSavedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "versions_saved_total",
			Help:      "Total number of saved versions",
		},
	)

	m.VersionsDeletedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "versions_deleted_total",
			Help:      "Total number of deleted versions",
		},
	)

	m.WordsAdded = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "version_words_added",
			Help:      "Number of added words per saved version",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	m.WordsRemoved = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "version_words_removed",
			Help:      "Number of removed words per saved version",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	m.SaveConflictsTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "save_conflicts_total",
			Help:      "Saves retried because another version was appended concurrently",
		},
	)

	m.StoreOperationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Total number of storage operations",
		},
		[]string{"operation", "status"},
	)

	m.StoreOperationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_operation_duration_seconds",
			Help:      "Duration of storage operations in seconds",
			Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)

	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "server_uptime_seconds",
			Help:      "Server uptime in seconds",
		},
		func() float64 {
			return time.Since(m.ServerStartTime).Seconds()
		},
	)

	return m
}

// Registry returns the registry all metrics are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the HTTP handler serving the metrics in exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// VersionSaved records a successfully saved version
func (m *Metrics) VersionSaved(added, removed int) {
	m.VersionsSavedTotal.Inc()
	m.WordsAdded.Observe(float64(added))
	m.WordsRemoved.Observe(float64(removed))
}

// VersionDeleted records a deleted version
func (m *Metrics) VersionDeleted() {
	m.VersionsDeletedTotal.Inc()
}

// SaveConflict records a lost compare-and-swap on save
func (m *Metrics) SaveConflict() {
	m.SaveConflictsTotal.Inc()
}

// StoreOperation records duration and outcome of a storage call
func (m *Metrics) StoreOperation(operation string, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.StoreOperationsTotal.WithLabelValues(operation, status).Inc()
	m.StoreOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// HTTPRequest records a finished HTTP request
func (m *Metrics) HTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// InFlight adjusts the number of requests currently being served
func (m *Metrics) InFlight(delta float64) {
	m.HTTPRequestsInFlight.Add(delta)
}
