package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"figimap/internal/logger"
	"figimap/internal/mapping"
)

// Config holds application configuration
type Config struct {
	// Server
	Env      string
	Port     string
	LogLevel string

	// OpenFIGI
	OpenFIGIAPIKey string
	JobsPerRequest int

	// AdminAPIKey guards the job log endpoints. Empty disables them.
	AdminAPIKey string
}

var appConfig *Config

// Load loads configuration from the environment, reading a .env file first
// when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Get().Debug(".env file not found, using process environment")
	}

	config := &Config{
		Env:            getEnv("ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		OpenFIGIAPIKey: os.Getenv("OPENFIGI_API_KEY"),
		AdminAPIKey:    os.Getenv("ADMIN_API_KEY"),
	}

	jobs, err := parseJobsPerRequest(os.Getenv("MAX_JOBS_PER_REQUEST"), config.OpenFIGIAPIKey != "")
	if err != nil {
		return nil, err
	}
	config.JobsPerRequest = jobs

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			logger.Get().Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// parseJobsPerRequest returns the explicit override when set, otherwise the
// mapping API's limit for the key situation.
func parseJobsPerRequest(s string, hasAPIKey bool) (int, error) {
	if s == "" {
		return mapping.JobsPerRequest(hasAPIKey), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid MAX_JOBS_PER_REQUEST %q: %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("MAX_JOBS_PER_REQUEST must be positive, got %d", n)
	}
	return n, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
