// Package config loads runtime configuration from the environment.
package config

import "os"

// Config holds the runtime settings of the server and CLI.
type Config struct {
	Port         string
	DatabasePath string
	LogLevel     string
}

// Load reads configuration from environment variables, applying defaults.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		DatabasePath: getEnv("SUDOKU_DB", "puzzles.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
