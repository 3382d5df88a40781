// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/scout.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Sport list — the fixed catalogue served by /api/sports
// --------------------------------------------------------------------------

var sports = []string{
	"Cricket", "Football", "Badminton", "Running", "Gym", "Cycling",
	"Swimming", "Kabaddi", "Yoga", "Basketball", "Chess", "Table Tennis",
}

// Sports returns a copy of the supported sport names in display order.
func Sports() []string {
	out := make([]string, len(sports))
	copy(out, sports)
	return out
}

// --------------------------------------------------------------------------
// Gemini defaults
// --------------------------------------------------------------------------

const (
	DefaultGeminiURL     = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"
	DefaultGeminiTimeout = 30 * time.Second

	// TimezoneName is the zone every date and timestamp is computed in.
	TimezoneName = "Asia/Kolkata"
)

// Credential values shipped in sample .env files. Treated as "not configured".
var placeholderKeys = map[string]bool{
	"GEMINI_API_KEY":            true,
	"your-gemini-api-key-here": true,
}

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Gemini
	GeminiAPIKey  string
	GeminiURL     string
	GeminiTimeout time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Observability
	MetricsEnabled bool
	LogLevel       slog.Level
	LogFormat      string // text, json

	// Location is Asia/Kolkata, or a fixed +05:30 zone when tzdata is missing.
	Location *time.Location
}

// Load reads configuration from environment variables with sensible defaults.
// It never fails: every setting has a default and the credential is optional.
func Load() *Config {
	return &Config{
		GeminiAPIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiURL:     envOr("GEMINI_API_URL", DefaultGeminiURL),
		GeminiTimeout: envDuration("GEMINI_TIMEOUT_SECONDS", DefaultGeminiTimeout),

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 5000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{"*"}),

		MetricsEnabled: envBool("METRICS_ENABLED", true),
		LogLevel:       envLevel("LOG_LEVEL", slog.LevelInfo),
		LogFormat:      strings.ToLower(envOr("LOG_FORMAT", "text")),

		Location: LoadLocation(),
	}
}

// GeminiConfigured reports whether live Gemini calls should be attempted.
// This is the single predicate deciding between the mock and live tiers.
func (c *Config) GeminiConfigured() bool {
	return c.GeminiAPIKey != "" && !placeholderKeys[c.GeminiAPIKey]
}

// HasPlaceholderKey reports whether the credential is a known sample value.
func (c *Config) HasPlaceholderKey() bool {
	return placeholderKeys[c.GeminiAPIKey]
}

// NewLogger builds the process logger for the configured level and format.
// DEBUG=true forces the debug level.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// Level is the effective log level.
func (c *Config) Level() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return c.LogLevel
}

// LoadLocation returns the Asia/Kolkata zone. Minimal containers ship without
// tzdata, so a fixed +05:30 zone stands in when the lookup fails.
func LoadLocation() *time.Location {
	loc, err := time.LoadLocation(TimezoneName)
	if err != nil {
		return time.FixedZone("IST", 5*60*60+30*60)
	}
	return loc
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return fallback
}

func envLevel(key string, fallback slog.Level) slog.Level {
	if v := os.Getenv(key); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			return lvl
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
