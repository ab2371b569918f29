// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the full environment surface, read once at startup and
// treated as immutable afterwards.
type Config struct {
	Env  string
	Port string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret        string
	JWTExpire        time.Duration
	CookieExpireDays int

	MaxFileUpload  int64
	FileUploadPath string
	StorageDriver  string // "disk" or "s3"

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string

	GeocoderURL    string
	GeocoderAPIKey string

	WorkerCount int
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Load reads an optional .env file and then the process environment.
// Missing required variables are collected and reported together.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	var missing []string

	required := func(key string) string {
		v := os.Getenv(key)
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}

	cfg.DatabaseURL = required("DATABASE_URL")
	cfg.RedisAddr = required("REDIS_ADDR")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.JWTSecret = required("JWT_SECRET")
	cfg.GeocoderURL = required("GEOCODER_URL")
	cfg.GeocoderAPIKey = required("GEOCODER_API_KEY")

	cfg.Env = os.Getenv("APP_ENV")
	if cfg.Env == "" {
		cfg.Env = EnvDevelopment
	}
	if cfg.Env != EnvDevelopment && cfg.Env != EnvProduction {
		return nil, fmt.Errorf("invalid APP_ENV %q", cfg.Env)
	}

	cfg.Port = os.Getenv("PORT")
	if cfg.Port == "" {
		cfg.Port = "5000"
	}

	var err error
	if cfg.RedisDB, err = intEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}

	jwtExpireHours, err := intEnv("JWT_EXPIRE_HOURS", 24)
	if err != nil {
		return nil, err
	}
	cfg.JWTExpire = time.Duration(jwtExpireHours) * time.Hour

	if cfg.CookieExpireDays, err = intEnv("COOKIE_EXPIRE_DAYS", 30); err != nil {
		return nil, err
	}

	maxUpload, err := intEnv("MAX_FILE_UPLOAD", 1_000_000)
	if err != nil {
		return nil, err
	}
	cfg.MaxFileUpload = int64(maxUpload)

	cfg.FileUploadPath = os.Getenv("FILE_UPLOAD_PATH")
	if cfg.FileUploadPath == "" {
		cfg.FileUploadPath = "./public/uploads"
	}

	cfg.StorageDriver = os.Getenv("STORAGE_DRIVER")
	if cfg.StorageDriver == "" {
		cfg.StorageDriver = "disk"
	}
	if cfg.StorageDriver == "s3" {
		cfg.S3Bucket = required("S3_BUCKET")
		cfg.S3Region = required("S3_REGION")
		cfg.S3Endpoint = os.Getenv("S3_ENDPOINT")
		cfg.S3AccessKey = required("S3_ACCESS_KEY")
		cfg.S3SecretKey = required("S3_SECRET_KEY")
	} else if cfg.StorageDriver != "disk" {
		return nil, fmt.Errorf("invalid STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if cfg.WorkerCount, err = intEnv("WORKER_COUNT", 1); err != nil {
		return nil, err
	}
	if cfg.WorkerCount <= 0 {
		return nil, fmt.Errorf("invalid WORKER_COUNT %d", cfg.WorkerCount)
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

// Production reports whether the server runs in production mode; the token
// cookie carries the Secure flag only then.
func (c *Config) Production() bool {
	return c.Env == EnvProduction
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return n, nil
}
