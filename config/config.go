package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Browser BrowserConfig
	Scraper ScraperConfig
	Log     LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 3001
	Mode string // "debug", "release", "test"; default: "release"

	// AllowedOrigins is the CORS allow-list for browser callers.
	// Entries ending in "*" match by prefix.
	AllowedOrigins []string
}

// BrowserConfig controls the Rod browser instance.
type BrowserConfig struct {
	// Headless controls whether the browser runs headless.
	Headless bool // default: true

	// MaxPages is the page pool capacity (max concurrent tabs).
	MaxPages int // default: 5

	// DefaultProxy is the default proxy URL for all requests.
	DefaultProxy string

	// NoSandbox disables Chrome's sandbox (needed in Docker).
	NoSandbox bool // default: false

	// BrowserBin overrides the Chromium binary path.
	BrowserBin string
}

// ScraperConfig controls the rendered-page fetch.
type ScraperConfig struct {
	// NavigationTimeout is the hard budget for one navigation attempt.
	// There is no retry: a page that does not render within this budget
	// fails the request.
	NavigationTimeout time.Duration // default: 30s

	// SettleDelay is the fixed pause after the DOM stabilises, giving
	// client-side rendering time to fill in the comparison widgets.
	SettleDelay time.Duration // default: 2s
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envOr("PRICESCOUT_HOST", "0.0.0.0"),
			Port: envIntOr("PORT", 3001),
			Mode: envOr("PRICESCOUT_MODE", "release"),
			AllowedOrigins: envSliceOr("PRICESCOUT_ALLOWED_ORIGINS", []string{
				"https://ppl-ai-code-interpreter-files.s3.amazonaws.com",
				"http://localhost:3000",
				"http://localhost:5173",
			}),
		},
		Browser: BrowserConfig{
			Headless:     envBoolOr("PRICESCOUT_HEADLESS", true),
			MaxPages:     envIntOr("PRICESCOUT_MAX_PAGES", 5),
			DefaultProxy: os.Getenv("PRICESCOUT_PROXY"),
			NoSandbox:    envBoolOr("PRICESCOUT_NO_SANDBOX", false),
			BrowserBin:   os.Getenv("PRICESCOUT_BROWSER_BIN"),
		},
		Scraper: ScraperConfig{
			NavigationTimeout: envDurationOr("PRICESCOUT_NAV_TIMEOUT", 30*time.Second),
			SettleDelay:       envDurationOr("PRICESCOUT_SETTLE_DELAY", 2*time.Second),
		},
		Log: LogConfig{
			Level:  envOr("PRICESCOUT_LOG_LEVEL", "info"),
			Format: envOr("PRICESCOUT_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
