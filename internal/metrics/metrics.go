// Package metrics collects and exposes prometheus metrics for the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"bootcampdir/internal/apperr"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration prometheus.Histogram
}

// NewCollector registers the request metrics on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bootcampdir_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bootcampdir_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	c.registry.MustRegister(c.requests, c.requestDuration)
	return c
}

// Middleware records one observation per completed request. The route label
// uses the matched echo path, not the raw URL, to keep cardinality bounded.
func (c *Collector) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		start := time.Now()
		err := next(ctx)
		// Errors have not reached the terminal translator yet, so the
		// response status still reads 200 here. Resolve the label the
		// same way the translator will.
		status := ctx.Response().Status
		if err != nil {
			status = apperr.Status(err)
		}
		route := ctx.Path()
		if route == "" {
			route = "unmatched"
		}
		c.requests.WithLabelValues(ctx.Request().Method, route, strconv.Itoa(status)).Inc()
		c.requestDuration.Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler returns the exposition endpoint for the collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
