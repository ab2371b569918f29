package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bootcampdir/internal/apperr"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollectorMiddleware(t *testing.T) {
	c := NewCollector()
	e := echo.New()
	e.Use(c.Middleware)
	e.GET("/bootcamps/:id", func(ctx echo.Context) error {
		return ctx.NoContent(http.StatusOK)
	})
	e.GET("/boom", func(ctx echo.Context) error {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
	})
	e.GET("/gone", func(ctx echo.Context) error {
		return apperr.NotFound("bootcamp not found with id 9")
	})
	e.GET("/broken", func(ctx echo.Context) error {
		return errors.New("connection refused")
	})

	for _, path := range []string{"/bootcamps/1", "/bootcamps/2"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		e.ServeHTTP(httptest.NewRecorder(), req)
	}
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/gone", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/broken", nil))

	// both hits share the matched route label, not the raw URL
	require.Equal(t, float64(2), testutil.ToFloat64(c.requests.WithLabelValues("GET", "/bootcamps/:id", "200")))
	require.Equal(t, float64(1), testutil.ToFloat64(c.requests.WithLabelValues("GET", "/boom", "429")))
	// typed errors are labeled with the status they render as, not 200
	require.Equal(t, float64(1), testutil.ToFloat64(c.requests.WithLabelValues("GET", "/gone", "404")))
	require.Equal(t, float64(1), testutil.ToFloat64(c.requests.WithLabelValues("GET", "/broken", "500")))
}

func TestCollectorHandler(t *testing.T) {
	c := NewCollector()
	e := echo.New()
	e.Use(c.Middleware)
	e.GET("/ok", func(ctx echo.Context) error { return ctx.NoContent(http.StatusOK) })
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "bootcampdir_http_requests_total")
	require.Contains(t, rec.Body.String(), "bootcampdir_http_request_duration_seconds")
}
