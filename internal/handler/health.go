// File: internal/handler/health.go
package handler

import (
	"net/http"

	"bootcampdir/internal/api"
	"bootcampdir/internal/apperr"
	"bootcampdir/internal/cache"
	"bootcampdir/internal/database"

	"github.com/labstack/echo/v4"
)

// HealthHandler checks database and redis connectivity.
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} api.Response
// @Failure     500 {object} api.Response
// @Router      /health [get]
func HealthHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return apperr.Internal("database unhealthy", err)
		}
		if err := rdb.Ping(c.Request().Context()).Err(); err != nil {
			return apperr.Internal("cache unhealthy", err)
		}
		return c.JSON(http.StatusOK, api.Data("ok"))
	}
}
