package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != 3001 {
		t.Errorf("Port = %d, want 3001", cfg.Server.Port)
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		t.Error("AllowedOrigins default must not be empty")
	}
	if cfg.Scraper.NavigationTimeout != 30*time.Second {
		t.Errorf("NavigationTimeout = %v, want 30s", cfg.Scraper.NavigationTimeout)
	}
	if cfg.Scraper.SettleDelay != 2*time.Second {
		t.Errorf("SettleDelay = %v, want 2s", cfg.Scraper.SettleDelay)
	}
	if !cfg.Browser.Headless {
		t.Error("Headless must default to true")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("PRICESCOUT_NAV_TIMEOUT", "10s")
	t.Setenv("PRICESCOUT_ALLOWED_ORIGINS", "http://a.example, http://b.example")

	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Scraper.NavigationTimeout != 10*time.Second {
		t.Errorf("NavigationTimeout = %v, want 10s", cfg.Scraper.NavigationTimeout)
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "http://b.example" {
		t.Errorf("AllowedOrigins = %v, want the two trimmed entries", cfg.Server.AllowedOrigins)
	}
}

func TestLoad_MalformedEnvFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("PRICESCOUT_HEADLESS", "maybe")

	cfg := Load()

	if cfg.Server.Port != 3001 {
		t.Errorf("Port = %d, want fallback 3001", cfg.Server.Port)
	}
	if !cfg.Browser.Headless {
		t.Error("Headless must fall back to true on malformed input")
	}
}
