// Package config loads the example server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	Environment string

	// Message sent to clients in place of Unexpected failures.
	GenericErrorMessage string

	// Worker count for batch requests.
	BatchWorkers int
}

func Load() (*Config, error) {
	_ = godotenv.Load() // production environments may not have a .env file

	cfg := &Config{
		Addr:                getEnv("ADDR", ":8080"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		GenericErrorMessage: getEnv("GENERIC_ERROR_MESSAGE", "an unexpected error occurred"),
		BatchWorkers:        getEnvAsInt("BATCH_WORKERS", 4),
	}

	if cfg.BatchWorkers <= 0 {
		return nil, fmt.Errorf("BATCH_WORKERS must be positive, got %d", cfg.BatchWorkers)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsInt(key string, defaultVal int) int {
	if val, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return val
	}
	return defaultVal
}
