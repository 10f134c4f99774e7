package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects application metrics on its own registry so the metrics
// endpoint serves only what we register.
type Metrics struct {
	registry *prometheus.Registry

	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	listsGenerated  prometheus.Counter
	itemsDerived    prometheus.Histogram
	exportCount     *prometheus.CounterVec
}

// NewMetrics creates a metrics collector with all collectors registered.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP requests processed",
			},
			[]string{"method", "path", "status"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		listsGenerated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "shopping_lists_generated_total",
				Help: "Shopping lists derived from meal plans",
			},
		),

		itemsDerived: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "shopping_list_items_per_generation",
				Help:    "Items produced per shopping list generation",
				Buckets: prometheus.LinearBuckets(0, 10, 10),
			},
		),

		exportCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopping_list_exports_total",
				Help: "Shopping list exports by format",
			},
			[]string{"format"},
		),
	}

	m.registry.MustRegister(
		m.requestCount,
		m.requestDuration,
		m.listsGenerated,
		m.itemsDerived,
		m.exportCount,
	)

	return m
}

// Handler returns the HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// GinMiddleware records request counts and latency per route.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.requestCount.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// RecordListGeneration records one shopping list derivation and its size.
func (m *Metrics) RecordListGeneration(itemCount int) {
	m.listsGenerated.Inc()
	m.itemsDerived.Observe(float64(itemCount))
}

// RecordExport records one export in the given format.
func (m *Metrics) RecordExport(format string) {
	m.exportCount.WithLabelValues(format).Inc()
}
