// Package config reads engine configuration from the environment and
// optional override files. The bank-marker mapping and the table
// header-marker set are the only tunable extraction inputs; overriding
// them onboards new statement formats without touching extraction code.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/0xjaydeep/debrokly/internal/domain/extract"
)

// Config holds all application configuration.
type Config struct {
	OutputDir   string
	Format      string
	LogLevel    string
	MarkersFile string

	BankMarkers   []extract.BankMarkers
	HeaderMarkers []string
}

// markersFile is the on-disk shape of a marker override file.
type markersFile struct {
	Banks         []extract.BankMarkers `json:"banks"`
	HeaderMarkers []string              `json:"header_markers"`
}

// Load reads configuration from environment variables, honoring a .env
// file when present. Marker overrides are loaded from the file named by
// DEBROKLY_MARKERS_FILE; the built-in sets apply otherwise.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		OutputDir:   getEnv("DEBROKLY_OUTPUT_DIR", "outputs"),
		Format:      getEnv("DEBROKLY_FORMAT", "csv"),
		LogLevel:    getEnv("DEBROKLY_LOG_LEVEL", "info"),
		MarkersFile: getEnv("DEBROKLY_MARKERS_FILE", ""),

		BankMarkers:   extract.DefaultBankMarkers(),
		HeaderMarkers: extract.DefaultHeaderMarkers(),
	}

	if cfg.MarkersFile != "" {
		if err := cfg.loadMarkers(cfg.MarkersFile); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (c *Config) loadMarkers(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading markers file: %w", err)
	}

	var mf markersFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return fmt.Errorf("parsing markers file %s: %w", path, err)
	}

	if len(mf.Banks) > 0 {
		c.BankMarkers = mf.Banks
	}
	if len(mf.HeaderMarkers) > 0 {
		c.HeaderMarkers = mf.HeaderMarkers
	}
	return nil
}

// SlogLevel maps the configured log level name to a slog level,
// defaulting to Info for unknown names.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
