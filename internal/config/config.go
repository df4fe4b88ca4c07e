package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"showroom/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	API       APIConfig
	Data      DataConfig
	Display   DisplayConfig
	Log       LogConfig
	Profiling ProfilingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// APIConfig holds JSON API server settings
type APIConfig struct {
	Port    string
	GinMode string
}

// DataConfig describes where the inventory spreadsheet lives and how to read it
type DataConfig struct {
	// Source is a file path or an http(s) URL.
	Source     string
	SheetName  string
	SchemaFile string
	// FetchTimeout bounds a single fetch; zero means no timeout.
	FetchTimeout time.Duration
}

// DisplayConfig holds number formatting settings
type DisplayConfig struct {
	Locale         string
	CurrencySymbol string
	MileageUnit    string
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:    *loadServerConfig(),
		API:       *loadAPIConfig(),
		Data:      *loadDataConfig(),
		Display:   *loadDisplayConfig(),
		Log:       LogConfig{Level: getEnvOrDefault("LOG_LEVEL", "info")},
		Profiling: *loadProfilingConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port: getEnvOrDefault("PORT", "8080"),
	}
}

func loadAPIConfig() *APIConfig {
	return &APIConfig{
		Port:    getEnvOrDefault("API_PORT", "8081"),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),
	}
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		Source:       getEnvOrDefault("INVENTORY_SOURCE", "data/inventory.xlsx"),
		SheetName:    getEnvOrDefault("INVENTORY_SHEET", "Inventory"),
		SchemaFile:   getEnvOrDefault("SCHEMA_FILE", ""),
		FetchTimeout: getEnvDurationOrDefault("FETCH_TIMEOUT", 0),
	}
}

func loadDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Locale:         getEnvOrDefault("LOCALE", "en-US"),
		CurrencySymbol: getEnvOrDefault("CURRENCY_SYMBOL", "$"),
		MileageUnit:    getEnvOrDefault("MILEAGE_UNIT", "mi"),
	}
}

func loadProfilingConfig() *ProfilingConfig {
	return &ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
	}
}

func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Data.Source) == "" {
		return errors.ConfigInvalid("INVENTORY_SOURCE is required")
	}
	if config.Data.FetchTimeout < 0 {
		return errors.ConfigInvalid("FETCH_TIMEOUT must not be negative")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric")
	}
	if _, err := strconv.Atoi(config.API.Port); err != nil {
		return errors.ConfigInvalid("API_PORT must be numeric")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
