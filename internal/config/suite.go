package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the marketplace instance the suite runs against
const DefaultBaseURL = "https://dev.rentzila.com.ua"

// SuiteConfig holds browser and target settings for a test run
type SuiteConfig struct {
	BaseURL           string
	APIURL            string
	Headless          bool
	ActionTimeout     time.Duration
	NavigationTimeout time.Duration
	ArtifactsDir      string
	RecordVideo       bool
	Trace             bool
	Seed              uint64
	LogLevel          slog.Level
}

// LoadSuiteConfig loads suite configuration from environment variables
func LoadSuiteConfig(getenv func(string) string) (*SuiteConfig, error) {
	config := &SuiteConfig{
		BaseURL:           strings.TrimRight(getenv("RENTZILA_BASE_URL"), "/"),
		APIURL:            strings.TrimRight(getenv("RENTZILA_API_URL"), "/"),
		Headless:          true,
		ActionTimeout:     10 * time.Second,
		NavigationTimeout: 30 * time.Second,
		ArtifactsDir:      getenv("ARTIFACTS_DIR"),
		RecordVideo:       true,
		LogLevel:          slog.LevelInfo,
	}

	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.APIURL == "" {
		config.APIURL = config.BaseURL
	}
	if config.ArtifactsDir == "" {
		config.ArtifactsDir = "test-results"
	}

	var err error
	if config.Headless, err = parseBool(getenv, "HEADLESS", config.Headless); err != nil {
		return nil, err
	}
	if config.RecordVideo, err = parseBool(getenv, "RECORD_VIDEO", config.RecordVideo); err != nil {
		return nil, err
	}
	if config.Trace, err = parseBool(getenv, "TRACE", config.Trace); err != nil {
		return nil, err
	}
	if config.ActionTimeout, err = parseDuration(getenv, "ACTION_TIMEOUT", config.ActionTimeout); err != nil {
		return nil, err
	}
	if config.NavigationTimeout, err = parseDuration(getenv, "NAVIGATION_TIMEOUT", config.NavigationTimeout); err != nil {
		return nil, err
	}

	if raw := getenv("E2E_SEED"); raw != "" {
		config.Seed, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("E2E_SEED must be an unsigned integer: %w", err)
		}
	}

	if raw := getenv("LOG_LEVEL"); raw != "" {
		if err := config.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
		}
	}

	return config, nil
}

// URL joins a path onto the base URL
func (c *SuiteConfig) URL(path string) string {
	return c.BaseURL + "/" + strings.TrimLeft(path, "/")
}

func parseBool(getenv func(string) string, key string, fallback bool) (bool, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return v, nil
}

func parseDuration(getenv func(string) string, key string, fallback time.Duration) (time.Duration, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return v, nil
}
