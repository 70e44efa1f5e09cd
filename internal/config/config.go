// Package config handles the persistent application configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Region values understood by the backend.
const (
	RegionUK    = "uk"
	RegionMalta = "malta"
)

// Config is the persistent application configuration
type Config struct {
	// Backend is the base URL of the RAG/article backend.
	Backend string `json:"backend"`

	// Region selects locale-specific content ("uk" or "malta").
	// Sent with every chat query.
	Region string `json:"region"`

	// ArticleLimit is how many articles to request per refresh.
	ArticleLimit int `json:"article_limit"`

	// UI Preferences
	UI UIConfig `json:"ui"`
}

// UIConfig holds UI preferences
type UIConfig struct {
	Theme        string `json:"theme"`
	PageSize     int    `json:"page_size"`
	ShowUpdates  bool   `json:"show_updates"`
	CompactFeed  bool   `json:"compact_feed"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Backend:      "http://localhost:8000",
		Region:       RegionUK,
		ArticleLimit: 50,
		UI: UIConfig{
			Theme:       "dark",
			PageSize:    9,
			ShowUpdates: true,
			CompactFeed: false,
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cyberwatch", "config.json")
}

// Load reads config from disk, or returns defaults
func Load() (*Config, error) {
	path := ConfigPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults and try to auto-populate from environment
			cfg := DefaultConfig()
			cfg.AutoPopulateFromEnv()
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}

	cfg.applyDefaults()
	cfg.AutoPopulateFromEnv()
	return &cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	path := ConfigPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// AutoPopulateFromEnv fills in settings from environment variables
func (c *Config) AutoPopulateFromEnv() {
	if v := os.Getenv("CYBERWATCH_BACKEND"); v != "" {
		c.Backend = v
	}
	if v := os.Getenv("CYBERWATCH_REGION"); v != "" {
		c.Region = NormalizeRegion(v)
	}
	if v := os.Getenv("CYBERWATCH_ARTICLE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.ArticleLimit = n
		}
	}
}

// NormalizeRegion maps arbitrary region spellings onto the two values the
// backend understands. Anything mentioning malta selects the Malta deployment;
// everything else falls back to the UK one.
func NormalizeRegion(s string) string {
	if strings.Contains(strings.ToLower(s), "malta") {
		return RegionMalta
	}
	return RegionUK
}

// applyDefaults fills zero values left by older config files.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Backend == "" {
		c.Backend = def.Backend
	}
	if c.Region == "" {
		c.Region = def.Region
	} else {
		c.Region = NormalizeRegion(c.Region)
	}
	if c.ArticleLimit <= 0 {
		c.ArticleLimit = def.ArticleLimit
	}
	if c.UI.Theme == "" {
		c.UI.Theme = def.UI.Theme
	}
	if c.UI.PageSize <= 0 {
		c.UI.PageSize = def.UI.PageSize
	}
}
