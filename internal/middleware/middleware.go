package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"bootcampdir/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// CookieName is the session cookie the auth handlers set.
const CookieName = "token"

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	tokenString := ""
	if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
		tokenString = cookie.Value
	} else if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
		}
		tokenString = parts[1]
	}
	if tokenString == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	claims, err := service.VerifySessionToken(tokenString)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := extractClaims(c)
		if err != nil {
			return err
		}
		c.Set(ContextUserKey, claims)
		return next(c)
	}
}

// Claims retrieves the authenticated user's claims set by RequireAuth.
func Claims(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
	return claims, ok
}
