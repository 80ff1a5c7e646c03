package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("Expected default address :8080, got %q", cfg.ListenAddr)
	}
	if cfg.CatalogDriver != CatalogDriverJSON {
		t.Errorf("Expected json catalog driver, got %q", cfg.CatalogDriver)
	}
	if cfg.DefaultExchangeRate != 3.75 {
		t.Errorf("Expected default exchange rate 3.75, got %g", cfg.DefaultExchangeRate)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected 10s shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TANKQUOTE_ADDR", ":9090")
	t.Setenv("TANKQUOTE_CATALOG_DRIVER", "sqlite")
	t.Setenv("TANKQUOTE_CATALOG_DB", "/var/lib/tankquote/catalog.db")
	t.Setenv("TANKQUOTE_DEFAULT_EXCHANGE_RATE", "1.18")
	t.Setenv("TANKQUOTE_SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("Expected address :9090, got %q", cfg.ListenAddr)
	}
	if cfg.CatalogDriver != CatalogDriverSQLite {
		t.Errorf("Expected sqlite driver, got %q", cfg.CatalogDriver)
	}
	if cfg.CatalogDBPath != "/var/lib/tankquote/catalog.db" {
		t.Errorf("Unexpected db path %q", cfg.CatalogDBPath)
	}
	if cfg.DefaultExchangeRate != 1.18 {
		t.Errorf("Expected exchange rate 1.18, got %g", cfg.DefaultExchangeRate)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected 30s shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("TANKQUOTE_CATALOG_DRIVER", "oracle")
	if _, err := Load(); err == nil {
		t.Error("Expected an error for an unknown catalog driver")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TANKQUOTE_DEFAULT_EXCHANGE_RATE", "not-a-number")
	t.Setenv("TANKQUOTE_SHUTDOWN_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultExchangeRate != 3.75 {
		t.Errorf("Expected fallback exchange rate 3.75, got %g", cfg.DefaultExchangeRate)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected fallback 10s shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
}
