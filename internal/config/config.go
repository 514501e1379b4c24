package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

type Config struct {
	// Application
	AppEnv          string
	Port            string
	PublicDir       string
	CORSOrigin      string
	ShutdownTimeout time.Duration

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Uploads
	StorageDriver   string // "local" or "s3"
	UploadDir       string
	MaxUploadMemory int64

	// Observability (optional)
	SentryDSN string

	// Storage (S3-compatible: MinIO, AWS S3, Cloudflare R2, DigitalOcean Spaces, etc.)
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3Endpoint      string // Optional: for S3-compatible services (MinIO, DO Spaces, R2, etc.)
	S3Prefix        string
	S3PathStyle     bool // Path-style addressing, always on when S3Endpoint is set
	S3PresignExpiry time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	return &Config{
		// Application
		AppEnv:          envString("APP_ENV", "development"),
		Port:            envString("PORT", "3000"),
		PublicDir:       envString("PUBLIC_DIR", "public"),
		CORSOrigin:      envString("CORS_ORIGIN", "*"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data.db?_pragma=journal_mode(WAL)"),

		// Uploads
		StorageDriver:   envString("STORAGE_DRIVER", StorageLocal),
		UploadDir:       envString("UPLOAD_DIR", "uploads"),
		MaxUploadMemory: envInt64("MAX_UPLOAD_MEMORY", 32<<20), // 32MB kept in memory, rest spills to temp files

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Storage (only read when STORAGE_DRIVER=s3)
		S3Region:        envString("S3_REGION", ""),
		S3Bucket:        envString("S3_BUCKET", ""),
		S3AccessKey:     envString("S3_ACCESS_KEY", ""),
		S3SecretKey:     envString("S3_SECRET_KEY", ""),
		S3Endpoint:      envString("S3_ENDPOINT", ""),
		S3Prefix:        envString("S3_PREFIX", "uploads/"),
		S3PathStyle:     envBool("S3_PATH_STYLE", false),
		S3PresignExpiry: envDuration("S3_PRESIGN_EXPIRY", 1*time.Hour),
	}
}

// Validate reports configuration that would make the server unusable.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageLocal:
		if c.UploadDir == "" {
			return fmt.Errorf("UPLOAD_DIR must not be empty")
		}
	case StorageS3:
		if c.S3Region == "" || c.S3Bucket == "" {
			return fmt.Errorf("STORAGE_DRIVER=s3 requires S3_REGION and S3_BUCKET")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q (want %q or %q)", c.StorageDriver, StorageLocal, StorageS3)
	}
	return nil
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt64(key string, def int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("config invalid integer, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
