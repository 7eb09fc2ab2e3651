// Package config loads and validates application configuration from
// environment variables, with optional .env bootstrap for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tripmapper/backend/internal/domain"
	"github.com/tripmapper/backend/internal/geo"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// Modes and Purposes are the recognised trip vocabularies. Values outside
	// them are still accepted; these only drive canonicalization.
	// TRANSPORT_MODES / TRIP_PURPOSES override as comma-separated lists.
	Modes    []domain.Mode
	Purposes []domain.Purpose

	// Speeds maps modes to assumed mph for the coordinate-less distance
	// fallback. MODE_SPEEDS overrides entries as "mode=mph" pairs,
	// e.g. "walking=3,cycling=10,vehicle=30".
	Speeds geo.SpeedTable

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is loaded first, if present; real
// environment variables win over .env entries.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	// Ignore the error: a missing .env just means real env vars only.
	_ = godotenv.Load()

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		MaxBodyBytes: 1 << 20,
	}

	for _, m := range splitCSV(getEnv("TRANSPORT_MODES", "")) {
		cfg.Modes = append(cfg.Modes, domain.Mode(m))
	}
	if cfg.Modes == nil {
		cfg.Modes = domain.DefaultModes
	}

	for _, p := range splitCSV(getEnv("TRIP_PURPOSES", "")) {
		cfg.Purposes = append(cfg.Purposes, domain.Purpose(p))
	}
	if cfg.Purposes == nil {
		cfg.Purposes = domain.DefaultPurposes
	}

	speeds, err := parseSpeeds(os.Getenv("MODE_SPEEDS"))
	if err != nil {
		return Config{}, err
	}
	cfg.Speeds = speeds

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// parseSpeeds builds a SpeedTable from a "mode=mph,mode=mph" string.
// Entries overlay the defaults, so setting one mode keeps the rest.
func parseSpeeds(s string) (geo.SpeedTable, error) {
	table := geo.DefaultSpeeds()
	for _, pair := range splitCSV(s) {
		key, val, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("MODE_SPEEDS entry %q: want mode=mph", pair)
		}
		mph, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil || mph <= 0 {
			return nil, fmt.Errorf("MODE_SPEEDS entry %q: mph must be a positive number", pair)
		}
		table[domain.Mode(strings.TrimSpace(key))] = mph
	}
	return table, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
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
