// Package metrics defines the Prometheus collectors exported by rizz.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Translation outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeEmpty       = "empty"
	OutcomeSkipped     = "skipped"
	OutcomeConfigError = "config_error"
	OutcomeNetworkErr  = "network_error"
	OutcomeGatewayErr  = "gateway_error"
	OutcomeError       = "error"
)

// Registry holds every rizz collector plus the Go runtime and process
// collectors. It is served at /metrics.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// RequestsTotal counts HTTP requests by method, route, and status code.
	RequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "rizz_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "route", "status"})

	// RequestDuration tracks HTTP request latency by route.
	RequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rizz_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// TranslationsTotal counts pipeline runs by outcome.
	TranslationsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "rizz_translations_total",
		Help: "Total translation pipeline runs by outcome.",
	}, []string{"outcome"})

	// GatewayDuration tracks gateway round-trip latency.
	GatewayDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "rizz_gateway_duration_seconds",
		Help:    "Time spent waiting on the AI gateway.",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	})

	// GatewayErrors counts gateway error responses by HTTP status code.
	GatewayErrors = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "rizz_gateway_errors_total",
		Help: "Gateway responses with a client or server error status.",
	}, []string{"status"})

	// InputChars tracks the distribution of input text lengths.
	InputChars = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "rizz_input_chars",
		Help:    "Number of characters in translation input text.",
		Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500},
	})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}
