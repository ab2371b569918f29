package courses

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"bootcampdir/internal/api"
	"bootcampdir/internal/apperr"
	"bootcampdir/internal/database"
	"bootcampdir/internal/middleware"
	"bootcampdir/internal/model"
	"bootcampdir/internal/service"
	"bootcampdir/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	listCourses           = store.ListCourses
	listCoursesByBootcamp = store.ListCoursesByBootcamp
	getCourseByID         = store.GetCourseByID
	getBootcampByID       = store.GetBootcampByID
	createCourse          = store.CreateCourse
	updateCourse          = store.UpdateCourse
	deleteCourse          = store.DeleteCourse
)

// A malformed id identifies no resource, so it reads as absent.
func courseID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apperr.NotFound(fmt.Sprintf("course not found with id %s", c.Param("id")))
	}
	return id, nil
}

func parentBootcampID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apperr.NotFound(fmt.Sprintf("bootcamp not found with id %s", c.Param("id")))
	}
	return id, nil
}

// courseOwner resolves the owner of the course's parent bootcamp; every
// course mutation authorizes against the parent.
func courseOwner(c echo.Context, db database.DB, bootcampID int) (int, error) {
	b, err := getBootcampByID(c.Request().Context(), db, bootcampID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperr.NotFound(fmt.Sprintf("bootcamp not found with id %d", bootcampID))
	}
	if err != nil {
		return 0, err
	}
	return b.UserID, nil
}

// ListHandler returns all courses under the generic list contract.
// @Summary     List courses
// @Tags        courses
// @Produce     json
// @Success     200 {object} api.Response
// @Router      /courses [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := api.ParseListParams(c.QueryParams())
		courses, err := listCourses(c.Request().Context(), db, params)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.DataCount(api.Project(courses, params.Select), len(courses)))
	}
}

// ListByBootcampHandler returns the courses of one bootcamp.
// @Summary     List courses for a bootcamp
// @Tags        courses
// @Produce     json
// @Param       id path int true "bootcamp ID"
// @Success     200 {object} api.Response
// @Failure     404 {object} api.Response
// @Router      /bootcamps/{id}/courses [get]
func ListByBootcampHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		bootcampID, err := parentBootcampID(c)
		if err != nil {
			return err
		}
		if _, err := courseOwner(c, db, bootcampID); err != nil {
			return err
		}
		courses, err := listCoursesByBootcamp(c.Request().Context(), db, bootcampID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.DataCount(courses, len(courses)))
	}
}

// GetHandler returns one course by ID.
// @Summary     Get course
// @Tags        courses
// @Produce     json
// @Param       id path int true "course ID"
// @Success     200 {object} api.Response
// @Failure     404 {object} api.Response
// @Router      /courses/{id} [get]
func GetHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := courseID(c)
		if err != nil {
			return err
		}
		course, err := getCourseByID(c.Request().Context(), db, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound(fmt.Sprintf("course not found with id %d", id))
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.Data(course))
	}
}

// CreateHandler adds a course to a bootcamp owned by the requester.
// @Summary     Create course
// @Tags        courses
// @Accept      json
// @Produce     json
// @Param       id   path int                     true "bootcamp ID"
// @Param       body body api.CreateCourseRequest true "course data"
// @Success     201 {object} api.Response
// @Failure     403 {object} api.Response
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /bootcamps/{id}/courses [post]
func CreateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		bootcampID, err := parentBootcampID(c)
		if err != nil {
			return err
		}
		claims, ok := middleware.Claims(c)
		if !ok {
			return apperr.Unauthorized("invalid or missing token")
		}

		var req api.CreateCourseRequest
		if err := c.Bind(&req); err != nil {
			return apperr.BadRequest("invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return apperr.BadRequest(err.Error())
		}

		ownerID, err := courseOwner(c, db, bootcampID)
		if err != nil {
			return err
		}
		if !service.CanModify(ownerID, claims) {
			return apperr.Forbidden(fmt.Sprintf("user %d is not authorized to add a course to this bootcamp", claims.UserID))
		}

		course, err := createCourse(c.Request().Context(), db, &model.Course{
			BootcampID:   bootcampID,
			Title:        req.Title,
			Description:  req.Description,
			Tuition:      req.Tuition,
			Weeks:        req.Weeks,
			MinimumSkill: req.MinimumSkill,
		})
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, api.Data(course))
	}
}

// UpdateHandler patches a course; authorization runs against the parent
// bootcamp's owner.
// @Summary     Update course
// @Tags        courses
// @Accept      json
// @Produce     json
// @Param       id   path int                     true "course ID"
// @Param       body body api.UpdateCourseRequest true "patch"
// @Success     200 {object} api.Response
// @Failure     403 {object} api.Response
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /courses/{id} [put]
func UpdateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := courseID(c)
		if err != nil {
			return err
		}
		claims, ok := middleware.Claims(c)
		if !ok {
			return apperr.Unauthorized("invalid or missing token")
		}

		var req api.UpdateCourseRequest
		if err := c.Bind(&req); err != nil {
			return apperr.BadRequest("invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return apperr.BadRequest(err.Error())
		}

		course, err := getCourseByID(c.Request().Context(), db, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound(fmt.Sprintf("course not found with id %d", id))
		}
		if err != nil {
			return err
		}

		ownerID, err := courseOwner(c, db, course.BootcampID)
		if err != nil {
			return err
		}
		if !service.CanModify(ownerID, claims) {
			return apperr.Forbidden(fmt.Sprintf("user %d is not authorized to update this course", claims.UserID))
		}

		course.Title = req.Title
		course.Description = req.Description
		course.Tuition = req.Tuition
		course.Weeks = req.Weeks
		course.MinimumSkill = req.MinimumSkill
		updated, err := updateCourse(c.Request().Context(), db, course)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound(fmt.Sprintf("course not found with id %d", id))
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.Data(updated))
	}
}

// DeleteHandler removes a course.
// @Summary     Delete course
// @Tags        courses
// @Produce     json
// @Param       id path int true "course ID"
// @Success     200 {object} api.Response
// @Failure     403 {object} api.Response
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /courses/{id} [delete]
func DeleteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := courseID(c)
		if err != nil {
			return err
		}
		claims, ok := middleware.Claims(c)
		if !ok {
			return apperr.Unauthorized("invalid or missing token")
		}

		course, err := getCourseByID(c.Request().Context(), db, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound(fmt.Sprintf("course not found with id %d", id))
		}
		if err != nil {
			return err
		}

		ownerID, err := courseOwner(c, db, course.BootcampID)
		if err != nil {
			return err
		}
		if !service.CanModify(ownerID, claims) {
			return apperr.Forbidden(fmt.Sprintf("user %d is not authorized to delete this course", claims.UserID))
		}

		if err := deleteCourse(c.Request().Context(), db, id); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.Data(struct{}{}))
	}
}
