// Package config reads the backend configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the backend is configured with.
type Config struct {
	// HTTP server
	Port   string
	APIURL string

	// Database
	DBPath string

	// Logging
	LogFormat string // "human" or "json"
	GinMode   string

	// CORS, space-separated origins. Empty disables CORS headers.
	CORSAllowOrigins string
}

// Load reads the configuration from the environment, applying defaults for
// everything that is not set. A .env file in the working directory is
// loaded first if present.
func Load() Config {
	// A missing .env file is fine, the environment takes precedence anyway
	_ = godotenv.Load()

	return Config{
		Port:             getEnv("PORT", "8080"),
		APIURL:           getEnv("API_URL", "http://localhost:8080"),
		DBPath:           getEnv("DB_PATH", "data/ascent.db"),
		LogFormat:        getEnv("LOG_FORMAT", ""),
		GinMode:          getEnv("GIN_MODE", "release"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", ""),
	}
}

// Validate returns an error describing every invalid setting.
func (c Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		problems = append(problems, fmt.Sprintf("invalid log format %q: must be \"human\" or \"json\"", c.LogFormat))
	}

	if c.GinMode != "debug" && c.GinMode != "release" && c.GinMode != "test" {
		problems = append(problems, fmt.Sprintf("invalid gin mode %q: must be \"debug\", \"release\" or \"test\"", c.GinMode))
	}

	if c.DBPath == "" {
		problems = append(problems, "the database path must not be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
