package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PLACES_API_KEY", "maps-key")
	t.Setenv("GEMINI_API_KEY", "llm-key")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("PUBLIC_BASE_URL", "https://finder.example")
	t.Setenv("RATE_LIMIT_SEARCH", "10/min")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" || cfg.PlacesAPIKey != "maps-key" || cfg.GeminiAPIKey != "llm-key" {
		t.Fatalf("unexpected config values: %+v", cfg)
	}
	if cfg.GeminiModel != "gemini-1.5-pro" {
		t.Fatalf("unexpected model: %s", cfg.GeminiModel)
	}
	if cfg.PublicBaseURL != "https://finder.example" {
		t.Fatalf("unexpected public base url: %s", cfg.PublicBaseURL)
	}
	if cfg.RateLimitSearch.Requests != 10 || cfg.RateLimitSearch.Interval != time.Minute {
		t.Fatalf("unexpected rate limit config: %+v", cfg.RateLimitSearch)
	}

	// invalid rate limit should error
	os.Unsetenv("RATE_LIMIT_SEARCH")
	t.Setenv("RATE_LIMIT_SEARCH", "xyz")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid rate limit")
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "PLACES_API_KEY", "GEMINI_MODEL", "PUBLIC_BASE_URL", "PHONE_REGION", "RATE_LIMIT_SEARCH"} {
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	// A missing places key is allowed at load time.
	if cfg.PlacesAPIKey != "" {
		t.Fatalf("expected empty places key, got %s", cfg.PlacesAPIKey)
	}
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Fatalf("expected default model, got %s", cfg.GeminiModel)
	}
	if cfg.PhoneRegion != "US" {
		t.Fatalf("expected default phone region, got %s", cfg.PhoneRegion)
	}
	if cfg.RateLimitSearch.Requests != 30 || cfg.RateLimitSearch.Interval != time.Minute {
		t.Fatalf("unexpected default rate limit: %+v", cfg.RateLimitSearch)
	}
}

func TestParseRateLimit(t *testing.T) {
	cfg, err := parseRateLimit("5/sec")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Requests != 5 || cfg.Interval != time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	if _, err := parseRateLimit("bad-format"); err == nil {
		t.Fatalf("expected error for malformed value")
	}
	if _, err := parseRateLimit("0/min"); err == nil {
		t.Fatalf("expected error for zero requests")
	}
	if _, err := parseRateLimit("5/day"); err == nil {
		t.Fatalf("expected error for unsupported unit")
	}
}

func TestGetEnv(t *testing.T) {
	os.Unsetenv("FOO")
	if val := getEnv("FOO", "fallback"); val != "fallback" {
		t.Fatalf("expected fallback, got %s", val)
	}
	t.Setenv("FOO", "value")
	if val := getEnv("FOO", "fallback"); val != "value" {
		t.Fatalf("expected env value, got %s", val)
	}
}
