// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string `validate:"required,numeric"`

	// LogLevel controls the minimum log level. Defaults to "info".
	LogLevel string `validate:"oneof=debug info warn error"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string `validate:"dive,url|eq=*"`

	// PageLimit is the per-page limit used when a request omits ?limit. Defaults to 10.
	PageLimit int `validate:"gte=1"`

	// PageWindow is the window size used when a request omits ?window. Defaults to 8.
	PageWindow int `validate:"gte=0,lte=100"`

	// PageLinkTemplate is the link template used when a request omits
	// ?template. Must contain "{page}". Defaults to "?page={page}".
	PageLinkTemplate string `validate:"contains={page}"`

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64 `validate:"gte=1"`
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming every variable that is malformed or out of range.
func Load() (Config, error) {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSOrigins:      splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		PageLinkTemplate: getEnv("PAGE_LINK_TEMPLATE", "?page={page}"),
	}

	var invalid []string

	var err error
	if cfg.PageLimit, err = getEnvInt("PAGE_LIMIT", 10); err != nil {
		invalid = append(invalid, "PAGE_LIMIT")
	}
	if cfg.PageWindow, err = getEnvInt("PAGE_WINDOW", 8); err != nil {
		invalid = append(invalid, "PAGE_WINDOW")
	}
	maxBody, err := getEnvInt("MAX_BODY_BYTES", 1<<20)
	if err != nil {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}
	cfg.MaxBodyBytes = int64(maxBody)

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("environment variables are not integers: %s", strings.Join(invalid, ", "))
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt is getEnv for integers. A set but unparsable value is an error.
func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(strings.TrimSpace(v))
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
