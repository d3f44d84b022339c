// Package heriscience holds the service-level configuration shared by the
// route layer and the process entry point.
package heriscience

import (
	"os"
	"time"
)

// Config holds configuration for the backend service.
type Config struct {
	Port         string
	UploadDir    string
	ProcessedDir string

	// StoreType is "sqlite", "postgres", or "none" (gallery and chat
	// history disabled).
	StoreType       string
	StoreConnection string

	// GenerationTimeout bounds each remote generation call.
	GenerationTimeout time.Duration

	// CleanupSpec is a cron expression for the stale-file purge;
	// CleanupMaxAge is how old a file must be before it is removed.
	CleanupSpec   string
	CleanupMaxAge time.Duration
}

// NewConfig creates a configuration with default values, overridden by
// environment variables where set. Missing variables never fail startup.
func NewConfig() *Config {
	cfg := &Config{
		Port:              "5000",
		UploadDir:         "uploads",
		ProcessedDir:      "processed",
		StoreType:         "sqlite",
		StoreConnection:   "heriscience.sqlite",
		GenerationTimeout: 15 * time.Second,
		CleanupSpec:       "@hourly",
		CleanupMaxAge:     24 * time.Hour,
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if storeType := os.Getenv("STORE_TYPE"); storeType != "" {
		cfg.StoreType = storeType
	}
	if conn := os.Getenv("STORE_CONNECTION"); conn != "" {
		cfg.StoreConnection = conn
	}
	if timeout := os.Getenv("GENERATION_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			cfg.GenerationTimeout = d
		}
	}
	return cfg
}

// WithPort sets the listen port
func (c *Config) WithPort(port string) *Config {
	c.Port = port
	return c
}

// WithStore sets the store backend and connection
func (c *Config) WithStore(storeType, connection string) *Config {
	c.StoreType = storeType
	c.StoreConnection = connection
	return c
}

// WithGenerationTimeout sets the remote generation call timeout
func (c *Config) WithGenerationTimeout(timeout time.Duration) *Config {
	c.GenerationTimeout = timeout
	return c
}

// WithDirs sets the upload and processed directories
func (c *Config) WithDirs(uploadDir, processedDir string) *Config {
	c.UploadDir = uploadDir
	c.ProcessedDir = processedDir
	return c
}
