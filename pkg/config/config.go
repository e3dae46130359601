package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	AppName string

	// Database (shared with the web backend)
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	// Screenshot capture
	UploadPath        string // managed upload root
	EligibilityWindow time.Duration
	ChromeURL         string // empty = launch a local headless browser

	// Sentinels used when resolution has nothing better
	DefaultProjectID int64
	DefaultUserID    int64

	// Read-only serve command
	ServePort string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		AppName: envOrDefault("APP_NAME", "Git Nacht"),

		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBName:     envOrDefault("DB_NAME", "git_nacht"),
		DBUser:     envOrDefault("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBSSLMode:  envOrDefault("DB_SSLMODE", "disable"),

		UploadPath:        envOrDefault("UPLOAD_PATH", "uploads"),
		EligibilityWindow: envOrDefaultDuration("NACHT_WINDOW", 5*time.Minute),
		ChromeURL:         os.Getenv("CHROME_URL"),

		DefaultProjectID: envOrDefaultInt64("NACHT_DEFAULT_PROJECT_ID", 1),
		DefaultUserID:    envOrDefaultInt64("NACHT_DEFAULT_USER_ID", 1),

		ServePort: envOrDefault("SERVE_PORT", "8090"),
	}
}

// DSN returns the lib/pq connection string for the shared store.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBPassword, c.DBSSLMode)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return n
		}
	}
	return fallback
}

func envOrDefaultDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
