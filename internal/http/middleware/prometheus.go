package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsPath is where the Prometheus exposition is served. Requests to it are not counted.
const MetricsPath = "/metrics"

// PrometheusMiddleware holds the HTTP metrics and the page route gauge.
type PrometheusMiddleware struct {
	requestCount     *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	registeredRoutes prometheus.Gauge
}

// NewPrometheusMiddleware creates the collectors and registers them on reg.
func NewPrometheusMiddleware(reg prometheus.Registerer) (*PrometheusMiddleware, error) {
	m := &PrometheusMiddleware{
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		registeredRoutes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "craftly_registered_routes",
			Help: "Number of public page routes mounted from the route registry.",
		}),
	}

	for _, c := range []prometheus.Collector{m.requestCount, m.requestDuration, m.registeredRoutes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// SetRegisteredRoutes records how many page routes were mounted at startup.
func (m *PrometheusMiddleware) SetRegisteredRoutes(n int) {
	m.registeredRoutes.Set(float64(n))
}

// Handler returns the fiber middleware handler.
func (m *PrometheusMiddleware) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == MetricsPath {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		// Route pattern (e.g. /app/pages/:page) keeps label cardinality bounded.
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		m.requestCount.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())

		return err
	}
}
