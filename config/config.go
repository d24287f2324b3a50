package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	Env          string
	DatabaseURL  string
	LogLevel     string
	CORSOrigins  string
	// RateLimitMax is requests per minute per client IP; 0 disables the limiter
	RateLimitMax int
}

var AppConfig *Config

// Load reads .env (if any) and the process environment into AppConfig.
// A missing DATABASE_URL is fatal.
func Load() {
	_ = godotenv.Load()

	cfg, err := FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	AppConfig = cfg
}

// FromEnv builds a Config from the current environment without touching AppConfig.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        GetEnv("PORT", "8000"),
		Env:         GetEnv("ENV", "development"),
		DatabaseURL: GetEnv("DATABASE_URL", ""),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		CORSOrigins: GetEnv("CORS_ORIGINS", "*"),
	}

	rateLimit, err := GetEnvInt("RATE_LIMIT_MAX", 200)
	if err != nil {
		return nil, err
	}
	cfg.RateLimitMax = rateLimit

	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}

	return cfg, nil
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt is GetEnv for integer settings. A set but unparseable value is an error.
func GetEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
