// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"bootcampdir/internal/cache"
	"bootcampdir/internal/config"
	"bootcampdir/internal/database"
	"bootcampdir/internal/geocoder"
	"bootcampdir/internal/handler"
	"bootcampdir/internal/handler/auth"
	"bootcampdir/internal/handler/bootcamps"
	"bootcampdir/internal/handler/courses"
	"bootcampdir/internal/metrics"
	"bootcampdir/internal/middleware"
	"bootcampdir/internal/storage"
	"bootcampdir/internal/worker"
)

// Deps carries the collaborators the route table wires into handlers.
type Deps struct {
	Config   *config.Config
	DB       database.DB
	Redis    cache.Cache
	Geocoder geocoder.Geocoder
	Files    storage.Store
	Workers  worker.Pool
	Metrics  *metrics.Collector
	AuthRate *middleware.RateLimiter
}

// Setup registers every route under the versioned prefix.
func Setup(e *echo.Echo, d Deps) {
	e.Use(d.Metrics.Middleware)
	e.GET("/metrics", echo.WrapHandler(d.Metrics.Handler()))

	api := e.Group("/api/v1")

	api.GET("/health", handler.HealthHandler(d.DB, d.Redis))

	apiAuth := api.Group("/auth")
	apiAuth.POST("/register", auth.RegisterHandler(d.DB, d.Config), d.AuthRate.Middleware)
	apiAuth.POST("/login", auth.LoginHandler(d.DB, d.Config), d.AuthRate.Middleware)
	apiAuth.GET("/logout", auth.LogoutHandler(), middleware.RequireAuth)
	apiAuth.GET("/me", auth.GetMeHandler(d.DB), middleware.RequireAuth)
	apiAuth.POST("/forgotpassword", auth.ForgotPasswordHandler(d.DB, d.Workers), d.AuthRate.Middleware)
	apiAuth.PUT("/resetpassword/:resettoken", auth.ResetPasswordHandler(d.DB, d.Config), d.AuthRate.Middleware)

	apiBootcamps := api.Group("/bootcamps")
	apiBootcamps.GET("", bootcamps.ListHandler(d.DB))
	apiBootcamps.GET("/:id", bootcamps.GetHandler(d.DB))
	apiBootcamps.POST("", bootcamps.CreateHandler(d.DB, d.Geocoder), middleware.RequireAuth)
	apiBootcamps.PUT("/:id", bootcamps.UpdateHandler(d.DB), middleware.RequireAuth)
	apiBootcamps.DELETE("/:id", bootcamps.DeleteHandler(d.DB), middleware.RequireAuth)
	apiBootcamps.GET("/radius/:zipcode/:distance", bootcamps.RadiusHandler(d.DB, d.Geocoder), middleware.RequireAuth)
	apiBootcamps.PUT("/:id/photo", bootcamps.UploadPhotoHandler(d.DB, d.Files, d.Config), middleware.RequireAuth)
	apiBootcamps.GET("/:id/courses", courses.ListByBootcampHandler(d.DB))
	apiBootcamps.POST("/:id/courses", courses.CreateHandler(d.DB), middleware.RequireAuth)

	apiCourses := api.Group("/courses")
	apiCourses.GET("", courses.ListHandler(d.DB))
	apiCourses.GET("/:id", courses.GetHandler(d.DB))
	apiCourses.PUT("/:id", courses.UpdateHandler(d.DB), middleware.RequireAuth)
	apiCourses.DELETE("/:id", courses.DeleteHandler(d.DB), middleware.RequireAuth)
}
