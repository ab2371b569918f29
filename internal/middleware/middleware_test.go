package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bootcampdir/internal/model"
	"bootcampdir/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newAuthCtx(e *echo.Echo, prep func(*http.Request)) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if prep != nil {
		prep(req)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func requireHTTPStatus(t *testing.T, err error, status int) {
	t.Helper()
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, status, httpErr.Code)
}

func TestRequireAuth(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	t.Run("missing token", func(t *testing.T) {
		err := RequireAuth(next)(newAuthCtx(e, nil))
		requireHTTPStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		ctx := newAuthCtx(e, func(r *http.Request) {
			r.Header.Set("Authorization", "Token abc")
		})
		err := RequireAuth(next)(ctx)
		requireHTTPStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s")
		ctx := newAuthCtx(e, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer not-a-jwt")
		})
		err := RequireAuth(next)(ctx)
		requireHTTPStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("cookie token", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s")
		token, err := service.IssueSessionToken(model.User{ID: 7, Role: model.RoleUser}, time.Hour)
		require.NoError(t, err)

		ctx := newAuthCtx(e, func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		})
		var got *service.CustomClaims
		err = RequireAuth(func(c echo.Context) error {
			got, _ = Claims(c)
			return nil
		})(ctx)
		require.NoError(t, err)
		require.Equal(t, 7, got.UserID)
	})

	t.Run("bearer fallback", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s")
		token, err := service.IssueSessionToken(model.User{ID: 9, Role: model.RoleAdmin}, time.Hour)
		require.NoError(t, err)

		ctx := newAuthCtx(e, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
		})
		var got *service.CustomClaims
		err = RequireAuth(func(c echo.Context) error {
			got, _ = Claims(c)
			return nil
		})(ctx)
		require.NoError(t, err)
		require.Equal(t, 9, got.UserID)
		require.Equal(t, model.RoleAdmin, got.Role)
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s")
		cookieToken, err := service.IssueSessionToken(model.User{ID: 1}, time.Hour)
		require.NoError(t, err)
		headerToken, err := service.IssueSessionToken(model.User{ID: 2}, time.Hour)
		require.NoError(t, err)

		ctx := newAuthCtx(e, func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: CookieName, Value: cookieToken})
			r.Header.Set("Authorization", "Bearer "+headerToken)
		})
		var got *service.CustomClaims
		err = RequireAuth(func(c echo.Context) error {
			got, _ = Claims(c)
			return nil
		})(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, got.UserID)
	})
}

func TestClaims(t *testing.T) {
	e := echo.New()
	ctx := newAuthCtx(e, nil)

	_, ok := Claims(ctx)
	require.False(t, ok)

	ctx.Set(ContextUserKey, &service.CustomClaims{UserID: 3})
	claims, ok := Claims(ctx)
	require.True(t, ok)
	require.Equal(t, 3, claims.UserID)
}
