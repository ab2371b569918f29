// @title        Bootcamp Directory API
// @version      1.0
// @description  REST API for the bootcamp directory: bootcamps, courses and authentication
// @BasePath     /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bootcampdir/internal/apperr"
	"bootcampdir/internal/cache"
	"bootcampdir/internal/config"
	"bootcampdir/internal/database"
	"bootcampdir/internal/geocoder"
	"bootcampdir/internal/metrics"
	"bootcampdir/internal/middleware"
	"bootcampdir/internal/router"
	"bootcampdir/internal/storage"
	"bootcampdir/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	_ "bootcampdir/docs"

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// auth endpoints allow authRatePerMinute requests per client IP.
const (
	authRatePerMinute = 10
	authRateBurst     = 10
	shutdownTimeout   = 10 * time.Second
)

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer  = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	exitFunc        = os.Exit
)

func newStorage(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if cfg.StorageDriver == "s3" {
		return storage.NewS3(ctx, storage.S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	}
	return storage.NewDisk(cfg.FileUploadPath)
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %v", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("redis connection failed: %v", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migration failed: %v", err)
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	files, err := newStorage(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("storage setup failed: %v", err)
	}

	authRate := middleware.NewRateLimiter(authRatePerMinute, authRateBurst)
	defer authRate.Stop()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Debug = !cfg.Production()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.HTTPErrorHandler = apperr.HTTPErrorHandler(e)

	router.Setup(e, router.Deps{
		Config:   cfg,
		DB:       db,
		Redis:    redis,
		Geocoder: geocoder.NewCached(geocoder.NewHTTPGeocoder(cfg.GeocoderURL, cfg.GeocoderAPIKey), redis),
		Files:    files,
		Workers:  wp,
		Metrics:  metrics.NewCollector(),
		AuthRate: authRate,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// serve until a fault or a termination signal, then drain gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- startServer(e, ":"+cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownServer(shutdownCtx, e); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
