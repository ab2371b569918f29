package bootcamps

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"bootcampdir/internal/api"
	"bootcampdir/internal/apperr"
	"bootcampdir/internal/database"
	"bootcampdir/internal/geocoder"
	"bootcampdir/internal/middleware"
	"bootcampdir/internal/model"
	"bootcampdir/internal/service"
	"bootcampdir/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	listBootcamps             = store.ListBootcamps
	getBootcampByID           = store.GetBootcampByID
	getBootcampByUserID       = store.GetBootcampByUserID
	createBootcamp            = store.CreateBootcamp
	updateBootcamp            = store.UpdateBootcamp
	deleteBootcamp            = store.DeleteBootcamp
	findBootcampsWithinRadius = store.FindBootcampsWithinRadius
)

// earthRadiusKm converts a linear search distance into an angular radius.
const earthRadiusKm = 6378.0

// A malformed id identifies no resource, so it reads as absent.
func bootcampID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apperr.NotFound(fmt.Sprintf("bootcamp not found with id %s", c.Param("id")))
	}
	return id, nil
}

// ListHandler returns bootcamps under the generic list contract
// (select, sort, page, limit, whitelisted exact-match filters).
// @Summary     List bootcamps
// @Tags        bootcamps
// @Produce     json
// @Param       select query string false "comma-separated field names to include"
// @Param       sort  query string false "comma-separated sort columns, - prefix descending"
// @Param       page  query int    false "page number"
// @Param       limit query int    false "page size"
// @Success     200 {object} api.Response
// @Router      /bootcamps [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := api.ParseListParams(c.QueryParams())
		bootcamps, err := listBootcamps(c.Request().Context(), db, params)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.DataCount(api.Project(bootcamps, params.Select), len(bootcamps)))
	}
}

// GetHandler returns one bootcamp by ID.
// @Summary     Get bootcamp
// @Tags        bootcamps
// @Produce     json
// @Param       id path int true "bootcamp ID"
// @Success     200 {object} api.Response
// @Failure     404 {object} api.Response
// @Router      /bootcamps/{id} [get]
func GetHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := bootcampID(c)
		if err != nil {
			return err
		}
		b, err := getBootcampByID(c.Request().Context(), db, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound(fmt.Sprintf("bootcamp not found with id %d", id))
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.Data(b))
	}
}

// CreateHandler publishes a bootcamp owned by the requester. A non-admin may
// publish only one; the address is geocoded into coordinates at creation.
// @Summary     Create bootcamp
// @Tags        bootcamps
// @Accept      json
// @Produce     json
// @Param       body body api.CreateBootcampRequest true "bootcamp data"
// @Success     201 {object} api.Response
// @Failure     400 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /bootcamps [post]
func CreateHandler(db database.DB, geo geocoder.Geocoder) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.Claims(c)
		if !ok {
			return apperr.Unauthorized("invalid or missing token")
		}

		var req api.CreateBootcampRequest
		if err := c.Bind(&req); err != nil {
			return apperr.BadRequest("invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return apperr.BadRequest(err.Error())
		}

		_, err := getBootcampByUserID(c.Request().Context(), db, claims.UserID)
		if err == nil && claims.Role != model.RoleAdmin {
			return apperr.BadRequest(fmt.Sprintf("user with id %d has already published a bootcamp", claims.UserID))
		}
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		loc, err := geo.Geocode(c.Request().Context(), req.Address)
		if err != nil {
			return apperr.BadRequest("unable to geocode address")
		}

		b, err := createBootcamp(c.Request().Context(), db, &model.Bootcamp{
			UserID:      claims.UserID,
			Name:        req.Name,
			Description: req.Description,
			Website:     req.Website,
			Address:     req.Address,
			Latitude:    loc.Latitude,
			Longitude:   loc.Longitude,
			Careers:     req.Careers,
		})
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, api.Data(b))
	}
}

// UpdateHandler applies a validated patch; only the owner or an admin may
// mutate, and the write is a single atomic statement.
// @Summary     Update bootcamp
// @Tags        bootcamps
// @Accept      json
// @Produce     json
// @Param       id   path int                       true "bootcamp ID"
// @Param       body body api.UpdateBootcampRequest true "patch"
// @Success     200 {object} api.Response
// @Failure     403 {object} api.Response
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /bootcamps/{id} [put]
func UpdateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := bootcampID(c)
		if err != nil {
			return err
		}
		claims, ok := middleware.Claims(c)
		if !ok {
			return apperr.Unauthorized("invalid or missing token")
		}

		var req api.UpdateBootcampRequest
		if err := c.Bind(&req); err != nil {
			return apperr.BadRequest("invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return apperr.BadRequest(err.Error())
		}

		b, err := getBootcampByID(c.Request().Context(), db, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound(fmt.Sprintf("bootcamp not found with id %d", id))
		}
		if err != nil {
			return err
		}
		if !service.CanModify(b.UserID, claims) {
			return apperr.Forbidden(fmt.Sprintf("user %d is not authorized to update this bootcamp", claims.UserID))
		}

		b.Name = req.Name
		b.Description = req.Description
		b.Website = req.Website
		b.Careers = req.Careers
		updated, err := updateBootcamp(c.Request().Context(), db, b)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound(fmt.Sprintf("bootcamp not found with id %d", id))
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.Data(updated))
	}
}

// DeleteHandler removes a bootcamp; its courses are removed by the store's
// cascade.
// @Summary     Delete bootcamp
// @Tags        bootcamps
// @Produce     json
// @Param       id path int true "bootcamp ID"
// @Success     200 {object} api.Response
// @Failure     403 {object} api.Response
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /bootcamps/{id} [delete]
func DeleteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := bootcampID(c)
		if err != nil {
			return err
		}
		claims, ok := middleware.Claims(c)
		if !ok {
			return apperr.Unauthorized("invalid or missing token")
		}

		b, err := getBootcampByID(c.Request().Context(), db, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound(fmt.Sprintf("bootcamp not found with id %d", id))
		}
		if err != nil {
			return err
		}
		if !service.CanModify(b.UserID, claims) {
			return apperr.Forbidden(fmt.Sprintf("user %d is not authorized to delete this bootcamp", claims.UserID))
		}

		if err := deleteBootcamp(c.Request().Context(), db, id); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.Data(struct{}{}))
	}
}

// RadiusHandler returns bootcamps within distance (km) of a postal code.
// The linear distance becomes an angular radius by dividing by Earth's mean
// radius; the boundary is inclusive.
// @Summary     Find bootcamps within a radius
// @Tags        bootcamps
// @Produce     json
// @Param       zipcode  path string true "postal code"
// @Param       distance path number true "radius in kilometers"
// @Success     200 {object} api.Response
// @Failure     400 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /bootcamps/radius/{zipcode}/{distance} [get]
func RadiusHandler(db database.DB, geo geocoder.Geocoder) echo.HandlerFunc {
	return func(c echo.Context) error {
		zipcode := c.Param("zipcode")
		distance, err := strconv.ParseFloat(c.Param("distance"), 64)
		if err != nil || distance <= 0 {
			return apperr.BadRequest("invalid distance")
		}

		loc, err := geo.Geocode(c.Request().Context(), zipcode)
		if err != nil {
			return apperr.BadRequest("unable to geocode postal code")
		}

		bootcamps, err := findBootcampsWithinRadius(c.Request().Context(), db, loc.Latitude, loc.Longitude, distance/earthRadiusKm)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.DataCount(bootcamps, len(bootcamps)))
	}
}
