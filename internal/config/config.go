// Package config loads the application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"required"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"oneof=development staging production"`

	// DataDir holds the store file and the dead-letter file.
	DataDir   string `validate:"required"`
	StoreFile string `validate:"required"`
	// LegacyDir points at the legacy per-player record directory; empty
	// disables the fallback reader.
	LegacyDir      string
	DeadLetterFile string

	APIKey string `validate:"required"` // API key for the admin HTTP surface
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:       getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:      getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:    getEnv(EnvEnvironment, DefaultEnvironment),
		DataDir:        getEnv(EnvDataDir, DefaultDataDir),
		StoreFile:      getEnv(EnvStoreFile, DefaultStoreFile),
		LegacyDir:      getEnv(EnvLegacyDir, ""),
		DeadLetterFile: getEnv(EnvDeadLetter, DefaultDeadLetter),
		APIKey:         getEnv(EnvAPIKey, ""),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := validateStruct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// StorePath returns the full path of the store file under the data dir.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, c.StoreFile)
}

// DeadLetterPath returns the full path of the dead-letter file under the
// data dir.
func (c *Config) DeadLetterPath() string {
	return filepath.Join(c.DataDir, c.DeadLetterFile)
}
