package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for issued requests.
const (
	OutcomeOK        = "ok"
	OutcomeHTTPError = "http_error"
	OutcomeError     = "error"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loadgen_requests_total",
			Help: "Total number of requests issued, by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	inFlightGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "loadgen_requests_in_flight",
			Help: "Current number of requests in flight",
		},
	)

	latencySeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "loadgen_request_duration_seconds",
			Help:    "Request round-trip time, by operation",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// Init registers the collectors with the default registry. Call once.
func Init() {
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(inFlightGauge)
	prometheus.MustRegister(latencySeconds)
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveRequest counts one finished request and records its latency.
func ObserveRequest(operation, outcome string, elapsedMs float64) {
	requestsTotal.WithLabelValues(operation, outcome).Inc()
	latencySeconds.WithLabelValues(operation).Observe(elapsedMs / 1000)
}

// IncInFlight marks one request as started.
func IncInFlight() {
	inFlightGauge.Inc()
}

// DecInFlight marks one request as finished.
func DecInFlight() {
	inFlightGauge.Dec()
}
