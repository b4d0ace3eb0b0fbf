package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env          string
	Debug        bool
	Port         string
	MongoURL     string
	DatabaseName string
	LogLevel     string
	LogFormat    string
}

// Load reads configuration from the environment, falling back to .env.local
// for values not already set. It is called once at startup; the returned
// Config is never mutated afterwards.
func Load() (*Config, error) {
	// Real environment variables take precedence over the file.
	_ = godotenv.Load(".env.local")

	cfg := &Config{
		Env:          getEnv("ENV", "development"),
		Debug:        getEnvBool("DEBUG", true),
		Port:         getEnv("PORT", "8080"),
		MongoURL:     getEnv("MONGODB_URL", ""),
		DatabaseName: getEnv("DATABASE_NAME", "recipe_db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
	}

	if cfg.MongoURL == "" {
		return nil, fmt.Errorf("MONGODB_URL is required")
	}

	return cfg, nil
}

// getEnv resolves a key case-insensitively, so MONGODB_URL and mongodb_url
// are interchangeable.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	for _, entry := range os.Environ() {
		k, v, ok := strings.Cut(entry, "=")
		if ok && strings.EqualFold(k, key) && v != "" {
			return v
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
