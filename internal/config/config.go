package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration loaded from environment variables
type Config struct {
	Port string

	// Database settings. DBType selects the driver (sqlite by default);
	// DBPath is only used for sqlite, the host/user settings only for
	// mysql and postgres.
	DBType     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string

	UploadDir     string
	MaxUploadSize int64

	CORSOrigins []string
}

// Load reads configuration from the environment with development defaults
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		DBType:        getEnv("DB_TYPE", "sqlite"),
		DBHost:        getEnv("DB_HOST", "127.0.0.1"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBUser:        getEnv("DB_USER", "root"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBName:        getEnv("DB_NAME", "qr_backend"),
		DBPath:        getEnv("DB_PATH", "database/qr_history.db"),
		UploadDir:     getEnv("UPLOAD_DIR", "static/uploads"),
		MaxUploadSize: getEnvInt64("MAX_UPLOAD_SIZE", 16*1024*1024),
		CORSOrigins:   splitOrigins(getEnv("CORS_ORIGINS", "*")),
	}
}

// getEnv gets environment variable with fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func splitOrigins(value string) []string {
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}
