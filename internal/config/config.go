package config

import (
	"os"
)

type Config struct {
	HTTPPort        string
	DefaultTimezone string
}

func Load() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		DefaultTimezone: getEnv("DEFAULT_TIMEZONE", "Asia/Tehran"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
