// Package config loads application settings from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup.
type Config struct {
	Port        string
	DatabaseDSN string

	JWTSecret         string
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string // bcrypt; takes precedence over AdminPassword

	UploadDir string

	LogLevel string
	LogPath  string

	CORSOrigins []string // empty means allow all
}

// Load reads the environment (plus .env files when present) into a Config.
// DB_DSN, JWT_SECRET and the admin identity are required; everything else
// has a sensible default.
func Load() (*Config, error) {
	// .env из текущей папки или корня репо, если запускаем из cmd/server
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	cfg := &Config{
		Port:              getenv("APP_PORT", "8080"),
		DatabaseDSN:       os.Getenv("DB_DSN"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		UploadDir:         getenv("UPLOAD_DIR", "uploads"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		LogPath:           getenv("LOG_PATH", "logs/server.log"),
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DB_DSN is empty (check your .env)")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}
	if cfg.AdminUsername == "" {
		return nil, fmt.Errorf("ADMIN_USERNAME is empty")
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("set ADMIN_PASSWORD or ADMIN_PASSWORD_HASH")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
