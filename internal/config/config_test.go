package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/bootcampdir")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("GEOCODER_URL", "https://geocode.example.com/v1")
	t.Setenv("GEOCODER_API_KEY", "k")
	// clear optionals so earlier tests cannot leak through
	for _, key := range []string{
		"APP_ENV", "PORT", "REDIS_PASSWORD", "REDIS_DB", "JWT_EXPIRE_HOURS",
		"COOKIE_EXPIRE_DAYS", "MAX_FILE_UPLOAD", "FILE_UPLOAD_PATH",
		"STORAGE_DRIVER", "S3_BUCKET", "S3_REGION", "S3_ENDPOINT",
		"S3_ACCESS_KEY", "S3_SECRET_KEY", "WORKER_COUNT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, EnvDevelopment, cfg.Env)
	require.False(t, cfg.Production())
	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, 24*time.Hour, cfg.JWTExpire)
	require.Equal(t, 30, cfg.CookieExpireDays)
	require.Equal(t, int64(1_000_000), cfg.MaxFileUpload)
	require.Equal(t, "./public/uploads", cfg.FileUploadPath)
	require.Equal(t, "disk", cfg.StorageDriver)
	require.Equal(t, 1, cfg.WorkerCount)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.ErrorContains(t, err, "DATABASE_URL")
	require.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoadInvalidEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "staging")

	_, err := Load()
	require.ErrorContains(t, err, "APP_ENV")
}

func TestLoadProduction(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Production())
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_EXPIRE_HOURS", "2")
	t.Setenv("COOKIE_EXPIRE_DAYS", "7")
	t.Setenv("MAX_FILE_UPLOAD", "2048")
	t.Setenv("WORKER_COUNT", "4")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, 2*time.Hour, cfg.JWTExpire)
	require.Equal(t, 7, cfg.CookieExpireDays)
	require.Equal(t, int64(2048), cfg.MaxFileUpload)
	require.Equal(t, 4, cfg.WorkerCount)
}

func TestLoadBadInt(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_EXPIRE_HOURS", "soon")

	_, err := Load()
	require.ErrorContains(t, err, "JWT_EXPIRE_HOURS")
}

func TestLoadInvalidWorkerCount(t *testing.T) {
	setRequired(t)
	t.Setenv("WORKER_COUNT", "-2")

	_, err := Load()
	require.ErrorContains(t, err, "WORKER_COUNT")
}

func TestLoadS3Driver(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_DRIVER", "s3")

	_, err := Load()
	require.ErrorContains(t, err, "S3_BUCKET")

	t.Setenv("S3_BUCKET", "photos")
	t.Setenv("S3_REGION", "us-east-1")
	t.Setenv("S3_ACCESS_KEY", "ak")
	t.Setenv("S3_SECRET_KEY", "sk")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "s3", cfg.StorageDriver)
	require.Equal(t, "photos", cfg.S3Bucket)
}

func TestLoadInvalidStorageDriver(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_DRIVER", "ftp")

	_, err := Load()
	require.ErrorContains(t, err, "STORAGE_DRIVER")
}
