// File: internal/handler/bootcamps/photo.go
package bootcamps

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"bootcampdir/internal/api"
	"bootcampdir/internal/apperr"
	"bootcampdir/internal/config"
	"bootcampdir/internal/database"
	"bootcampdir/internal/middleware"
	"bootcampdir/internal/service"
	"bootcampdir/internal/storage"
	"bootcampdir/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var updateBootcampPhoto = store.UpdateBootcampPhoto

// UploadPhotoHandler stores a bootcamp photo. The file is renamed to
// photo_<id><ext>, so an owner can only ever overwrite their own photo.
// @Summary     Upload bootcamp photo
// @Tags        bootcamps
// @Accept      multipart/form-data
// @Produce     json
// @Param       id   path     int  true "bootcamp ID"
// @Param       file formData file true "image file"
// @Success     200 {object} api.Response
// @Failure     400 {object} api.Response
// @Failure     403 {object} api.Response
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /bootcamps/{id}/photo [put]
func UploadPhotoHandler(db database.DB, files storage.Store, cfg *config.Config) echo.HandlerFunc {
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
			return apperr.Forbidden(fmt.Sprintf("user %d is not authorized to update this bootcamp", claims.UserID))
		}

		header, err := c.FormFile("file")
		if err != nil {
			return apperr.BadRequest("please upload a file")
		}
		contentType := header.Header.Get(echo.HeaderContentType)
		if !strings.HasPrefix(contentType, "image/") {
			return apperr.BadRequest("please upload an image file")
		}
		if header.Size > cfg.MaxFileUpload {
			return apperr.BadRequest(fmt.Sprintf("please upload an image smaller than %d bytes", cfg.MaxFileUpload))
		}

		src, err := header.Open()
		if err != nil {
			return apperr.BadRequest("please upload a file")
		}
		defer src.Close()

		name := fmt.Sprintf("photo_%d%s", b.ID, filepath.Ext(header.Filename))
		if err := files.Save(c.Request().Context(), name, src, header.Size, contentType); err != nil {
			return apperr.Internal("problem with file upload", err)
		}

		if err := updateBootcampPhoto(c.Request().Context(), db, b.ID, name); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.Data(name))
	}
}
