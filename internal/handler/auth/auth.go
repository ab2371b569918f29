package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"bootcampdir/internal/api"
	"bootcampdir/internal/apperr"
	"bootcampdir/internal/config"
	"bootcampdir/internal/database"
	"bootcampdir/internal/middleware"
	"bootcampdir/internal/model"
	"bootcampdir/internal/service"
	"bootcampdir/internal/store"
	"bootcampdir/internal/worker"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	hashPassword        = service.HashPassword
	authenticateUser    = service.AuthenticateUser
	issueSessionToken   = service.IssueSessionToken
	createUser          = store.CreateUser
	getUserByID         = store.GetUserByID
	getUserByEmail      = store.GetUserByEmail
	setUserResetToken   = store.SetUserResetToken
	getUserByResetToken = store.GetUserByResetToken
	updateUserPassword  = store.UpdateUserPassword
)

const resetTokenTTL = 15 * time.Minute

func userResponse(u *model.User) api.UserResponse {
	return api.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// sendTokenResponse issues a session token and delivers it both as the
// httpOnly cookie and in the JSON body.
func sendTokenResponse(c echo.Context, cfg *config.Config, u *model.User, status int) error {
	token, err := issueSessionToken(*u, cfg.JWTExpire)
	if err != nil {
		return apperr.Internal("failed to issue token", err)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(cfg.CookieExpireDays) * 24 * time.Hour),
		HttpOnly: true,
		Secure:   cfg.Production(),
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(status, api.TokenResponse(token, userResponse(u)))
}

// RegisterHandler creates a user account and opens a session.
// @Summary     Register user
// @Description Creates an account with a hashed password and returns a session token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.RegisterRequest true "registration data"
// @Success     201 {object} api.Response
// @Failure     400 {object} api.Response
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return apperr.BadRequest("invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return apperr.BadRequest(err.Error())
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return apperr.Internal("failed to hash password", err)
		}

		role := req.Role
		if role == "" {
			role = model.RoleUser
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        strings.ToLower(req.Email),
			PasswordHash: hash,
			Role:         role,
		})
		if err != nil {
			return err
		}

		return sendTokenResponse(c, cfg, user, http.StatusCreated)
	}
}

// LoginHandler verifies credentials and opens a session. Missing fields,
// unknown email and wrong password all produce the same 401 so the response
// does not leak which check failed.
// @Summary     Login user
// @Description Verifies email and password and returns a session token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "credentials"
// @Success     200 {object} api.Response
// @Failure     401 {object} api.Response
// @Router      /auth/login [post]
func LoginHandler(db database.DB, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return apperr.BadRequest("invalid request body")
		}
		if req.Email == "" || req.Password == "" {
			return apperr.Unauthorized("invalid credentials")
		}

		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.Unauthorized("invalid credentials")
		}
		if err != nil {
			return err
		}
		if err := authenticateUser(*user, req.Password); err != nil {
			return apperr.Unauthorized("invalid credentials")
		}

		return sendTokenResponse(c, cfg, user, http.StatusOK)
	}
}

// LogoutHandler clears the session cookie.
// @Summary     Logout user
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /auth/logout [get]
func LogoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		c.SetCookie(&http.Cookie{
			Name:     middleware.CookieName,
			Value:    "",
			Path:     "/",
			Expires:  time.Now().Add(-time.Hour),
			HttpOnly: true,
		})
		return c.JSON(http.StatusOK, api.Data(struct{}{}))
	}
}

// GetMeHandler returns the authenticated user's record.
// @Summary     Get current user
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.Response
// @Failure     401 {object} api.Response
// @Failure     404 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /auth/me [get]
func GetMeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.Claims(c)
		if !ok {
			return apperr.Unauthorized("invalid or missing token")
		}
		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("user not found")
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.Data(userResponse(user)))
	}
}

// ForgotPasswordHandler stores a single-use reset token and dispatches it
// out of band through the worker pool. The token never appears in the
// response body.
// @Summary     Request password reset
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.ForgotPasswordRequest true "account email"
// @Success     200 {object} api.Response
// @Failure     404 {object} api.Response
// @Router      /auth/forgotpassword [post]
func ForgotPasswordHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ForgotPasswordRequest
		if err := c.Bind(&req); err != nil {
			return apperr.BadRequest("invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return apperr.BadRequest(err.Error())
		}

		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("there is no user with that email")
		}
		if err != nil {
			return err
		}

		token := uuid.NewString()
		if err := setUserResetToken(c.Request().Context(), db, user.ID, hashResetToken(token), time.Now().Add(resetTokenTTL)); err != nil {
			return err
		}

		logger := c.Echo().Logger
		email := user.Email
		wp.Submit(func() {
			// stand-in for an outbound mail delivery
			logger.Infof("password reset requested for %s, token %s", email, token)
		})

		return c.JSON(http.StatusOK, api.Data("reset token sent"))
	}
}

// ResetPasswordHandler consumes a reset token and sets a new password.
// @Summary     Reset password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       resettoken path string true "reset token"
// @Param       body body api.ResetPasswordRequest true "new password"
// @Success     200 {object} api.Response
// @Failure     400 {object} api.Response
// @Router      /auth/resetpassword/{resettoken} [put]
func ResetPasswordHandler(db database.DB, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ResetPasswordRequest
		if err := c.Bind(&req); err != nil {
			return apperr.BadRequest("invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return apperr.BadRequest(err.Error())
		}

		user, err := getUserByResetToken(c.Request().Context(), db, hashResetToken(c.Param("resettoken")))
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.BadRequest("invalid or expired reset token")
		}
		if err != nil {
			return err
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return apperr.Internal("failed to hash password", err)
		}
		if err := updateUserPassword(c.Request().Context(), db, user.ID, hash); err != nil {
			return err
		}

		return sendTokenResponse(c, cfg, user, http.StatusOK)
	}
}

// hashResetToken digests a reset token for storage so a leaked users table
// does not expose live tokens.
func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
