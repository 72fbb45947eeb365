// Package metrics exposes Prometheus collectors for the generator and the
// preview server.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	pagesGeneratedTotal        *prometheus.CounterVec
	cardsRenderedTotal         prometheus.Counter
	fetchRequestsTotal         *prometheus.CounterVec
	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDurationSeconds *prometheus.HistogramVec

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		pagesGeneratedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wildpages_pages_generated_total",
				Help: "Total number of pages generated, labeled by source.",
			},
			[]string{"source"},
		)

		cardsRenderedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "wildpages_cards_rendered_total",
				Help: "Total number of animal cards rendered.",
			},
		)

		fetchRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wildpages_fetch_requests_total",
				Help: "Total number of upstream API fetches, labeled by outcome.",
			},
			[]string{"outcome"},
		)

		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests, labeled by method and code.",
			},
			[]string{"method", "code"},
		)

		httpRequestDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by method and route.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObservePageGenerated records a completed generation run.
func ObservePageGenerated(source string, cards int) {
	pagesGeneratedTotal.WithLabelValues(source).Inc()
	if cards > 0 {
		cardsRenderedTotal.Add(float64(cards))
	}
}

// ObserveFetch increments the upstream fetch counter for the given outcome.
func ObserveFetch(outcome string) {
	fetchRequestsTotal.WithLabelValues(outcome).Inc()
}

// ObserveHTTPRequest increments the HTTP request metrics.
func ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}
