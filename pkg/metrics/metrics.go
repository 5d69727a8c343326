package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerMetrics covers the HTTP surface plus the two order-lifecycle events
// worth counting on their own.
type ServerMetrics struct {
	Requests      *prometheus.CounterVec
	LatencyMS     *prometheus.HistogramVec
	Checkouts     prometheus.Counter
	StatusUpdates *prometheus.CounterVec
}

func NewServerMetrics(service string) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cafe",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cafe",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	checkouts := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cafe",
		Subsystem: service,
		Name:      "checkouts_total",
		Help:      "Carts successfully converted into transactions.",
	})
	statusUpdates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cafe",
		Subsystem: service,
		Name:      "transaction_status_updates_total",
		Help:      "Admin transaction status changes by target status.",
	}, []string{"status"})

	prometheus.MustRegister(requests, latency, checkouts, statusUpdates)
	return &ServerMetrics{
		Requests:      requests,
		LatencyMS:     latency,
		Checkouts:     checkouts,
		StatusUpdates: statusUpdates,
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
