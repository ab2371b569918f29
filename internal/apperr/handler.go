// File: internal/apperr/handler.go
package apperr

import (
	"errors"
	"net/http"

	"bootcampdir/internal/api"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

// Postgres error codes the translator re-maps to taxonomy kinds.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgInvalidTextRep      = "22P02"
)

// HTTPErrorHandler is the single terminal translator: any error escaping a
// handler ends here and becomes a {success:false, error:...} envelope.
// Store-layer faults are pattern-matched to the nearest taxonomy kind;
// everything unrecognized turns into a generic 500 and the original detail
// is logged, never sent to the client.
func HTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := translate(err)
		if status == http.StatusInternalServerError {
			e.Logger.Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
			message = "server error"
		}

		if c.Request().Method == http.MethodHead {
			if err := c.NoContent(status); err != nil {
				e.Logger.Error(err)
			}
			return
		}
		if err := c.JSON(status, api.ErrorResponse(message)); err != nil {
			e.Logger.Error(err)
		}
	}
}

// Status reports the HTTP status code an error will be rendered with.
func Status(err error) int {
	status, _ := translate(err)
	return status
}

func translate(err error) (int, string) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Message
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return http.StatusNotFound, "resource not found"
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return http.StatusBadRequest, "duplicate field value entered"
		case pgInvalidTextRep:
			return http.StatusBadRequest, "malformed identifier"
		case pgForeignKeyViolation:
			return http.StatusNotFound, "referenced resource not found"
		case pgCheckViolation:
			return http.StatusBadRequest, "invalid field value"
		}
	}

	return http.StatusInternalServerError, "server error"
}
