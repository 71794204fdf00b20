package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "customer_http_requests_total",
		Help: "HTTP requests handled, by method, route and status code.",
	}, []string{"method", "path", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "customer_http_request_duration_seconds",
		Help:    "HTTP request latency, by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// Metrics records a counter and latency sample for every handled request,
// labeled with the route pattern rather than the raw URL.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		path := c.Path()
		method := c.Request().Method
		requestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Response().Status)).Inc()
		requestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return err
	}
}
