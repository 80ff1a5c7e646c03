// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Catalog driver names accepted in TANKQUOTE_CATALOG_DRIVER.
const (
	CatalogDriverJSON   = "json"
	CatalogDriverSQLite = "sqlite"
)

// Config is the full service configuration.
type Config struct {
	ListenAddr      string
	ShutdownTimeout time.Duration

	CatalogDriver string
	PricesPath    string // json driver
	WeightsPath   string // json driver
	CatalogDBPath string // sqlite driver

	DefaultExchangeRate float64

	LogLevel  string
	LogFormat string
}

// Load reads configuration from TANKQUOTE_* environment variables,
// filling defaults for anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:          getEnv("TANKQUOTE_ADDR", ":8080"),
		ShutdownTimeout:     getDuration("TANKQUOTE_SHUTDOWN_TIMEOUT", 10*time.Second),
		CatalogDriver:       getEnv("TANKQUOTE_CATALOG_DRIVER", CatalogDriverJSON),
		PricesPath:          getEnv("TANKQUOTE_PRICES_PATH", "data/prices.json"),
		WeightsPath:         getEnv("TANKQUOTE_WEIGHTS_PATH", "data/weights.json"),
		CatalogDBPath:       getEnv("TANKQUOTE_CATALOG_DB", "data/catalog.db"),
		DefaultExchangeRate: getFloat("TANKQUOTE_DEFAULT_EXCHANGE_RATE", 3.75),
		LogLevel:            getEnv("TANKQUOTE_LOG_LEVEL", "info"),
		LogFormat:           getEnv("TANKQUOTE_LOG_FORMAT", "json"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	switch c.CatalogDriver {
	case CatalogDriverJSON, CatalogDriverSQLite:
	default:
		return fmt.Errorf("unknown catalog driver %q", c.CatalogDriver)
	}
	if c.DefaultExchangeRate <= 0 {
		return fmt.Errorf("default exchange rate must be positive, got %g", c.DefaultExchangeRate)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}
