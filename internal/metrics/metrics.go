// Package metrics defines the Prometheus collectors used by the API and the
// passage service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	LookupsTotal         *prometheus.CounterVec
	CacheHitsTotal       prometheus.Counter
	CacheMissesTotal     prometheus.Counter
	CacheErrorsTotal     prometheus.Counter
	TranslationVerses    *prometheus.GaugeVec
	RateLimitedTotal     prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed.",
			},
		),
		LookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bible_lookups_total",
				Help: "Total lookups by kind (verse, chapter, book, random, detect) and result (ok, not_found, invalid, error).",
			},
			[]string{"kind", "result"},
		),
		CacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "bible_cache_hits_total",
				Help: "Total number of passage cache hits.",
			},
		),
		CacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "bible_cache_misses_total",
				Help: "Total number of passage cache misses.",
			},
		),
		CacheErrorsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "bible_cache_errors_total",
				Help: "Total number of passage cache errors that were bypassed.",
			},
		),
		TranslationVerses: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "bible_translation_verses",
				Help: "Number of verses loaded per translation.",
			},
			[]string{"translation"},
		),
		RateLimitedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "http_rate_limited_total",
				Help: "Total number of requests rejected by the rate limiter.",
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.LookupsTotal,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
		m.CacheErrorsTotal,
		m.TranslationVerses,
		m.RateLimitedTotal,
	)

	return m
}

// Handler returns the scrape handler for the registry behind g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
