// Package config loads the server configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultTokenTTL is the access token lifetime used when
	// ACCESS_TOKEN_EXPIRE_MINUTES is not set.
	DefaultTokenTTL = 30 * time.Minute

	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

// Config holds every externally injected value the server needs.
// Secrets have no baked-in defaults; a missing SECRET_KEY is surfaced
// by Load so it never silently falls back to a literal.
type Config struct {
	// JWTSecret signs and verifies access tokens (SECRET_KEY).
	JWTSecret string

	// TokenTTL is the access token lifetime.
	TokenTTL time.Duration

	// DBDriver selects the gorm driver: "mysql" (default) or "postgres".
	DBDriver string

	// DSN is the full database connection string. When empty it is
	// composed from DBUser/DBPassword/DBHost/DBPort/DBName.
	DSN string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// RunMigrations enables gorm AutoMigrate on startup.
	RunMigrations bool

	// Redis connection. Empty RedisHost means no cache.
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// Addr is the bind address (HOST:PORT).
	Addr string

	// CORSOrigins lists the allowed frontend origins.
	CORSOrigins []string
}

// Load reads configuration from the environment. A .env file is loaded
// first when present (development convenience, same as the frontend setup).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		JWTSecret:     os.Getenv("SECRET_KEY"),
		TokenTTL:      DefaultTokenTTL,
		DBDriver:      envOr("DB_DRIVER", "mysql"),
		DSN:           os.Getenv("DATABASE_DSN"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBHost:        envOr("DB_HOST", "localhost"),
		DBPort:        os.Getenv("DB_PORT"),
		DBName:        os.Getenv("DB_NAME"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     envOr("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		Addr:          envOr("HOST", defaultHost) + ":" + envOr("PORT", defaultPort),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("SECRET_KEY is not set")
	}

	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES: %q", v)
		}
		cfg.TokenTTL = time.Duration(minutes) * time.Minute
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	} else {
		cfg.CORSOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
