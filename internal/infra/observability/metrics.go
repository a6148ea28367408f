// Package observability provides Prometheus metrics for the API.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics of the service in a private registry,
// so constructing it more than once (as tests do) never collides.
type Metrics struct {
	Registry *prometheus.Registry

	requestDuration  *prometheus.HistogramVec
	reportCache      *prometheus.CounterVec
	malformedRecords *prometheus.CounterVec
}

// NewMetrics creates a registry and registers every application metric in it.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rental_ledger_http_request_duration_seconds",
				Help:    "Duration of HTTP requests by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
		reportCache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rental_ledger_report_cache_total",
				Help: "Report snapshot lookups by result.",
			},
			[]string{"result"},
		),
		malformedRecords: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rental_ledger_malformed_records_total",
				Help: "Transactions skipped by aggregations because they were malformed.",
			},
			[]string{"operation"},
		),
	}
}

// RecordRequest records the duration of one HTTP request.
func (m *Metrics) RecordRequest(route, method string, status int, d time.Duration) {
	m.requestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(d.Seconds())
}

// RecordReportCache counts a report snapshot lookup.
func (m *Metrics) RecordReportCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.reportCache.WithLabelValues(result).Inc()
}

// RecordMalformedRecords counts transactions skipped by operation.
func (m *Metrics) RecordMalformedRecords(operation string, count int) {
	m.malformedRecords.WithLabelValues(operation).Add(float64(count))
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
