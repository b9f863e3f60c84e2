// Package config handles configuration loading for tickerbrief.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Universe UniverseConfig `mapstructure:"universe" yaml:"universe"`
	Fetch    FetchConfig    `mapstructure:"fetch"    yaml:"fetch"`
	Scoring  ScoringConfig  `mapstructure:"scoring"  yaml:"scoring"`
	Report   ReportConfig   `mapstructure:"report"   yaml:"report"`
	Logging  LoggingConfig  `mapstructure:"logging"  yaml:"logging"`
}

// UniverseConfig locates the ticker universe table.
type UniverseConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// FetchConfig selects and tunes the news provider.
type FetchConfig struct {
	Provider   string       `mapstructure:"provider"     yaml:"provider"` // "stub", "newsapi", "rss"
	NewsAPIKey string       `mapstructure:"newsapi_key"  yaml:"newsapi_key"`
	Query      string       `mapstructure:"query"        yaml:"query"`
	PageSize   int          `mapstructure:"page_size"    yaml:"page_size"`
	MaxRetries int          `mapstructure:"max_retries"  yaml:"max_retries"`
	Feeds      []FeedConfig `mapstructure:"feeds"        yaml:"feeds"`
}

// FeedConfig is one RSS feed entry for the "rss" provider.
type FeedConfig struct {
	Name string `mapstructure:"name" yaml:"name"`
	URL  string `mapstructure:"url"  yaml:"url"`
}

// ScoringConfig tunes the scoring engine thresholds.
type ScoringConfig struct {
	MinSourceQuality     float64 `mapstructure:"min_source_quality"     yaml:"min_source_quality"`
	DefaultSourceQuality float64 `mapstructure:"default_source_quality" yaml:"default_source_quality"`
	MaxReasons           int     `mapstructure:"max_reasons"            yaml:"max_reasons"`
	MaxLinks             int     `mapstructure:"max_links"              yaml:"max_links"`
}

// ReportConfig controls report output.
type ReportConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.tickerbrief/config.yaml (home directory)
//  3. /etc/tickerbrief/config.yaml (system)
//
// Environment variables override config file values.
// Format: TICKERBRIEF_<SECTION>_<KEY>, e.g., TICKERBRIEF_FETCH_NEWSAPI_KEY
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".tickerbrief"))
	v.AddConfigPath("/etc/tickerbrief")

	v.SetEnvPrefix("TICKERBRIEF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("TICKERBRIEF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("universe.path", "config/universe.csv")

	// Fetch defaults: offline-safe out of the box.
	v.SetDefault("fetch.provider", "stub")
	v.SetDefault("fetch.query", "stock market OR earnings")
	v.SetDefault("fetch.page_size", 100)
	v.SetDefault("fetch.max_retries", 2)

	// Scoring defaults
	v.SetDefault("scoring.min_source_quality", 0.50)
	v.SetDefault("scoring.default_source_quality", 0.50)
	v.SetDefault("scoring.max_reasons", 3)
	v.SetDefault("scoring.max_links", 5)

	// Report defaults
	v.SetDefault("report.dir", "reports")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// overrideFromEnv explicitly reads sensitive keys from environment
// variables. The bare NEWSAPI_KEY form is honored for compatibility
// with ad-hoc runs.
func overrideFromEnv(cfg *Config) {
	if key := os.Getenv("TICKERBRIEF_FETCH_NEWSAPI_KEY"); key != "" {
		cfg.Fetch.NewsAPIKey = key
	} else if key := os.Getenv("NEWSAPI_KEY"); key != "" {
		cfg.Fetch.NewsAPIKey = key
	}
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
