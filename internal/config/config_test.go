package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, e := range []string{"TICKERBRIEF_FETCH_NEWSAPI_KEY", "NEWSAPI_KEY"} {
		os.Unsetenv(e)
	}
}

// ── Load / Defaults ──

func TestLoadReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Universe.Path != "config/universe.csv" {
		t.Errorf("Universe.Path: got %q, want %q", cfg.Universe.Path, "config/universe.csv")
	}

	if cfg.Fetch.Provider != "stub" {
		t.Errorf("Fetch.Provider: got %q, want %q", cfg.Fetch.Provider, "stub")
	}
	if cfg.Fetch.PageSize != 100 {
		t.Errorf("Fetch.PageSize: got %d, want 100", cfg.Fetch.PageSize)
	}
	if cfg.Fetch.MaxRetries != 2 {
		t.Errorf("Fetch.MaxRetries: got %d, want 2", cfg.Fetch.MaxRetries)
	}

	if cfg.Scoring.MinSourceQuality != 0.50 {
		t.Errorf("Scoring.MinSourceQuality: got %f, want 0.50", cfg.Scoring.MinSourceQuality)
	}
	if cfg.Scoring.DefaultSourceQuality != 0.50 {
		t.Errorf("Scoring.DefaultSourceQuality: got %f, want 0.50", cfg.Scoring.DefaultSourceQuality)
	}
	if cfg.Scoring.MaxReasons != 3 {
		t.Errorf("Scoring.MaxReasons: got %d, want 3", cfg.Scoring.MaxReasons)
	}
	if cfg.Scoring.MaxLinks != 5 {
		t.Errorf("Scoring.MaxLinks: got %d, want 5", cfg.Scoring.MaxLinks)
	}

	if cfg.Report.Dir != "reports" {
		t.Errorf("Report.Dir: got %q, want %q", cfg.Report.Dir, "reports")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format: got %q, want %q", cfg.Logging.Format, "text")
	}
}

// ── LoadFromFile ──

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "test_config.yaml")
	content := []byte(`
universe:
  path: "data/universe.csv"
fetch:
  provider: "newsapi"
  newsapi_key: "test-newsapi-key-123456"
  query: "earnings"
  page_size: 50
scoring:
  min_source_quality: 0.6
  max_links: 3
report:
  dir: "out"
logging:
  level: "debug"
  format: "json"
`)
	if err := os.WriteFile(cfgPath, content, 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadFromFile(cfgPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.Universe.Path != "data/universe.csv" {
		t.Errorf("Universe.Path: got %q", cfg.Universe.Path)
	}
	if cfg.Fetch.Provider != "newsapi" {
		t.Errorf("Fetch.Provider: got %q, want newsapi", cfg.Fetch.Provider)
	}
	if cfg.Fetch.NewsAPIKey != "test-newsapi-key-123456" {
		t.Errorf("Fetch.NewsAPIKey: got %q", cfg.Fetch.NewsAPIKey)
	}
	if cfg.Fetch.Query != "earnings" {
		t.Errorf("Fetch.Query: got %q", cfg.Fetch.Query)
	}
	if cfg.Fetch.PageSize != 50 {
		t.Errorf("Fetch.PageSize: got %d, want 50", cfg.Fetch.PageSize)
	}
	if cfg.Scoring.MinSourceQuality != 0.6 {
		t.Errorf("Scoring.MinSourceQuality: got %f, want 0.6", cfg.Scoring.MinSourceQuality)
	}
	if cfg.Scoring.MaxLinks != 3 {
		t.Errorf("Scoring.MaxLinks: got %d, want 3", cfg.Scoring.MaxLinks)
	}
	if cfg.Scoring.MaxReasons != 3 {
		t.Errorf("Scoring.MaxReasons should keep default 3, got %d", cfg.Scoring.MaxReasons)
	}
	if cfg.Report.Dir != "out" {
		t.Errorf("Report.Dir: got %q, want out", cfg.Report.Dir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level: got %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadFromFileNotFound(t *testing.T) {
	if _, err := LoadFromFile("/nonexistent/path/config.yaml"); err == nil {
		t.Error("LoadFromFile() with nonexistent path should return error")
	}
}

func TestLoadFromFileFeeds(t *testing.T) {
	clearEnv(t)

	cfgPath := filepath.Join(t.TempDir(), "feeds.yaml")
	content := []byte(`
fetch:
  provider: "rss"
  feeds:
    - name: "CNBC"
      url: "https://example.com/cnbc.xml"
    - name: "TechCrunch"
      url: "https://example.com/tc.xml"
`)
	if err := os.WriteFile(cfgPath, content, 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadFromFile(cfgPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if len(cfg.Fetch.Feeds) != 2 {
		t.Fatalf("Feeds: got %d, want 2", len(cfg.Fetch.Feeds))
	}
	if cfg.Fetch.Feeds[0].Name != "CNBC" || cfg.Fetch.Feeds[0].URL != "https://example.com/cnbc.xml" {
		t.Errorf("Feeds[0]: got %+v", cfg.Fetch.Feeds[0])
	}
}

// ── overrideFromEnv ──

func TestOverrideFromEnvPrefixed(t *testing.T) {
	clearEnv(t)
	os.Setenv("TICKERBRIEF_FETCH_NEWSAPI_KEY", "prefixed-key-1234567890")
	defer os.Unsetenv("TICKERBRIEF_FETCH_NEWSAPI_KEY")

	cfg := &Config{}
	overrideFromEnv(cfg)
	if cfg.Fetch.NewsAPIKey != "prefixed-key-1234567890" {
		t.Errorf("NewsAPIKey: got %q", cfg.Fetch.NewsAPIKey)
	}
}

func TestOverrideFromEnvBare(t *testing.T) {
	clearEnv(t)
	os.Setenv("NEWSAPI_KEY", "bare-key-1234567890")
	defer os.Unsetenv("NEWSAPI_KEY")

	cfg := &Config{}
	overrideFromEnv(cfg)
	if cfg.Fetch.NewsAPIKey != "bare-key-1234567890" {
		t.Errorf("NewsAPIKey: got %q", cfg.Fetch.NewsAPIKey)
	}
}

func TestOverrideFromEnvPrefixedWins(t *testing.T) {
	clearEnv(t)
	os.Setenv("TICKERBRIEF_FETCH_NEWSAPI_KEY", "prefixed-key-1234567890")
	os.Setenv("NEWSAPI_KEY", "bare-key-1234567890")
	defer func() {
		os.Unsetenv("TICKERBRIEF_FETCH_NEWSAPI_KEY")
		os.Unsetenv("NEWSAPI_KEY")
	}()

	cfg := &Config{}
	overrideFromEnv(cfg)
	if cfg.Fetch.NewsAPIKey != "prefixed-key-1234567890" {
		t.Errorf("prefixed env var should win, got %q", cfg.Fetch.NewsAPIKey)
	}
}

func TestOverrideFromEnvNoEnvSet(t *testing.T) {
	clearEnv(t)

	cfg := &Config{Fetch: FetchConfig{NewsAPIKey: "from-config"}}
	overrideFromEnv(cfg)
	if cfg.Fetch.NewsAPIKey != "from-config" {
		t.Errorf("NewsAPIKey should stay as 'from-config' when env is unset, got %q", cfg.Fetch.NewsAPIKey)
	}
}

// ── maskKey ──

func TestMaskKeyShort(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "***"},
		{"a", "***"},
		{"abcd", "***"},
		{"12345678", "***"},
	}
	for _, tc := range tests {
		if got := maskKey(tc.input); got != tc.want {
			t.Errorf("maskKey(%q): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestMaskKeyLong(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"123456789", "123...789"},
		{"abcdef1234567890xyz", "abc...xyz"},
	}
	for _, tc := range tests {
		if got := maskKey(tc.input); got != tc.want {
			t.Errorf("maskKey(%q): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

// ── CheckAPIKeys ──

func TestCheckAPIKeysEmpty(t *testing.T) {
	clearEnv(t)

	statuses := CheckAPIKeys(&Config{})
	if len(statuses) != 1 {
		t.Fatalf("CheckAPIKeys: got %d statuses, want 1", len(statuses))
	}
	if statuses[0].IsSet {
		t.Error("NewsAPI key should not be set")
	}
	if statuses[0].Source != KeySourceNone {
		t.Errorf("Source: got %q, want %q", statuses[0].Source, KeySourceNone)
	}
}

func TestCheckAPIKeysFromConfig(t *testing.T) {
	clearEnv(t)

	cfg := &Config{Fetch: FetchConfig{NewsAPIKey: "config-key-abcdefgh"}}
	statuses := CheckAPIKeys(cfg)
	if !statuses[0].IsSet {
		t.Error("key should be set")
	}
	if statuses[0].Source != KeySourceConfig {
		t.Errorf("Source: got %q, want %q", statuses[0].Source, KeySourceConfig)
	}
	if statuses[0].Masked != "con...fgh" {
		t.Errorf("Masked: got %q, want %q", statuses[0].Masked, "con...fgh")
	}
}

func TestCheckAPIKeysFromEnv(t *testing.T) {
	clearEnv(t)
	os.Setenv("NEWSAPI_KEY", "env-key-abcdefghij")
	defer os.Unsetenv("NEWSAPI_KEY")

	cfg := &Config{Fetch: FetchConfig{NewsAPIKey: "env-key-abcdefghij"}}
	statuses := CheckAPIKeys(cfg)
	if statuses[0].Source != KeySourceEnv {
		t.Errorf("Source: got %q, want %q", statuses[0].Source, KeySourceEnv)
	}
}

// ── homeDir ──

func TestHomeDirReturnsNonEmpty(t *testing.T) {
	if homeDir() == "" {
		t.Error("homeDir() should not return empty string")
	}
}
