package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	newCtx := func(ip string) echo.Context {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = ip + ":12345"
		return e.NewContext(req, httptest.NewRecorder())
	}

	t.Run("burst then 429", func(t *testing.T) {
		rl := NewRateLimiter(1, 2)
		defer rl.Stop()
		h := rl.Middleware(next)

		require.NoError(t, h(newCtx("10.0.0.1")))
		require.NoError(t, h(newCtx("10.0.0.1")))

		err := h(newCtx("10.0.0.1"))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, http.StatusTooManyRequests, httpErr.Code)
	})

	t.Run("limits are per IP", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)
		defer rl.Stop()
		h := rl.Middleware(next)

		require.NoError(t, h(newCtx("10.0.0.1")))
		require.Error(t, h(newCtx("10.0.0.1")))
		require.NoError(t, h(newCtx("10.0.0.2")))
	})
}
