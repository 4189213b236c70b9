package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerMetrics carries the API's prometheus collectors on a private registry
// so tests can build as many instances as they like.
type ServerMetrics struct {
	registry      *prometheus.Registry
	Requests      *prometheus.CounterVec
	LatencyMS     *prometheus.HistogramVec
	OrdersCreated prometheus.Counter
}

func New() *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coffeestore",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coffeestore",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	orders := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "coffeestore",
		Name:      "orders_created_total",
		Help:      "Total number of orders placed.",
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(requests, latency, orders)
	return &ServerMetrics{
		registry:      registry,
		Requests:      requests,
		LatencyMS:     latency,
		OrdersCreated: orders,
	}
}

// Handler exposes the registry in prometheus text format.
func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
