package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors of the orders service. Each instance owns its own
// registry, so several can live side by side in one process.
type Metrics struct {
	registry *prometheus.Registry

	Requests       *prometheus.CounterVec
	LatencyMS      *prometheus.HistogramVec
	OrdersByStatus *prometheus.GaugeVec
}

func New(namespace string) *Metrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	byStatus := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "by_status",
		Help:      "Number of stored orders per status.",
	}, []string{"status"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(requests, latency, byStatus)

	return &Metrics{
		registry:       registry,
		Requests:       requests,
		LatencyMS:      latency,
		OrdersByStatus: byStatus,
	}
}

// ObserveRequest records one finished request.
func (m *Metrics) ObserveRequest(handler string, status int, elapsed time.Duration) {
	m.Requests.WithLabelValues(handler, strconv.Itoa(status)).Inc()
	m.LatencyMS.WithLabelValues(handler).Observe(float64(elapsed.Milliseconds()))
}

// SetOrdersByStatus overwrites the per-status gauge. Known statuses absent from
// counts are reset to zero.
func (m *Metrics) SetOrdersByStatus(counts map[string]int, known []string) {
	for _, s := range known {
		m.OrdersByStatus.WithLabelValues(s).Set(0)
	}
	for s, n := range counts {
		m.OrdersByStatus.WithLabelValues(s).Set(float64(n))
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
