package config

import (
	"os"
	"time"
)

// Default values for configuration.
const (
	DefaultStorePath      = "latestValues.txt"
	DefaultInput          = "data.txt"
	DefaultExportSuffix   = ".valid.csv"
	DefaultMaxErrorsShown = 10
	DefaultViewMaxLines   = 200
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "text"
	DefaultServerAddress  = ":8080"
	DefaultWebhookTimeout = 10 * time.Second
)

// Environment variable names.
const (
	EnvStorePath = "FLIGHTCHECK_STORE_PATH"
	EnvLogLevel  = "FLIGHTCHECK_LOG_LEVEL"
	EnvAddress   = "FLIGHTCHECK_ADDR"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		StorePath:      DefaultStorePath,
		DefaultInput:   DefaultInput,
		ExportSuffix:   DefaultExportSuffix,
		MaxErrorsShown: DefaultMaxErrorsShown,
		ViewMaxLines:   DefaultViewMaxLines,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Server: ServerConfig{
			Address: DefaultServerAddress,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if v := os.Getenv(EnvStorePath); v != "" {
		c.StorePath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvAddress); v != "" {
		c.Server.Address = v
	}
}
