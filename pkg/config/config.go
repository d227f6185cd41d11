package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public base URL used in generated feeds"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsmix.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration for the dynamic source store"`

	Feeds      FeedsConfig      `yaml:"feeds" json:"feeds" jsonschema:"description=Feed fetching configuration"`
	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Full-article content extraction configuration"`
	Enrichment EnrichmentConfig `yaml:"enrichment" json:"enrichment" jsonschema:"description=AI enrichment fallback configuration"`
}

// FeedsConfig holds feed fetching settings
type FeedsConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Timeout per feed fetch"`
	CacheTTL  time.Duration `yaml:"cache_ttl" json:"cache_ttl" jsonschema:"default=15m,description=Per-URL feed cache freshness window"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Newsmix/1.0,description=User agent for feed requests"`
}

// ExtractionConfig holds content extraction settings
type ExtractionConfig struct {
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=9s,description=Extraction timeout per article"`
	CacheTTL      time.Duration `yaml:"cache_ttl" json:"cache_ttl" jsonschema:"default=1h,description=Scraped article cache freshness window"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=500,description=Minimum plain-text length to accept and cache an extraction"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent for page requests (defaults to a desktop browser string)"`
}

// EnrichmentConfig holds AI enrichment settings for thin articles
type EnrichmentConfig struct {
	Enabled     bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable AI expansion of thin snippets"`
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.4,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=1200,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration with all defaults applied, used when no
// config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	// set defaults for database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:newsmix.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// set defaults for feeds
	if c.Feeds.Timeout == 0 {
		c.Feeds.Timeout = 10 * time.Second
	}
	if c.Feeds.CacheTTL == 0 {
		c.Feeds.CacheTTL = 15 * time.Minute
	}
	if c.Feeds.UserAgent == "" {
		c.Feeds.UserAgent = "Newsmix/1.0"
	}

	// set defaults for extraction
	if c.Extraction.Timeout == 0 {
		c.Extraction.Timeout = 9 * time.Second
	}
	if c.Extraction.CacheTTL == 0 {
		c.Extraction.CacheTTL = time.Hour
	}
	if c.Extraction.MinTextLength == 0 {
		c.Extraction.MinTextLength = 500
	}

	// set defaults for enrichment
	if c.Enrichment.Temperature == 0 {
		c.Enrichment.Temperature = 0.4
	}
	if c.Enrichment.MaxTokens == 0 {
		c.Enrichment.MaxTokens = 1200
	}
	if c.Enrichment.Timeout == 0 {
		c.Enrichment.Timeout = 30 * time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Feeds.Timeout < time.Second {
		return fmt.Errorf("feeds timeout must be at least 1 second")
	}
	if cfg.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction timeout must be at least 1 second")
	}
	if cfg.Extraction.MinTextLength < 0 {
		return fmt.Errorf("extraction min_text_length must be non-negative")
	}
	if cfg.Enrichment.Enabled {
		if cfg.Enrichment.Endpoint == "" {
			return fmt.Errorf("enrichment.endpoint is required when enrichment is enabled")
		}
		if cfg.Enrichment.Model == "" {
			return fmt.Errorf("enrichment.model is required when enrichment is enabled")
		}
		if cfg.Enrichment.Temperature < 0 || cfg.Enrichment.Temperature > 2 {
			return fmt.Errorf("enrichment.temperature must be between 0 and 2")
		}
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetFeedsConfig returns feed fetching configuration
func (c *Config) GetFeedsConfig() FeedsConfig {
	return c.Feeds
}

// GetExtractionConfig returns content extraction configuration
func (c *Config) GetExtractionConfig() ExtractionConfig {
	return c.Extraction
}

// GetEnrichmentConfig returns enrichment configuration
func (c *Config) GetEnrichmentConfig() EnrichmentConfig {
	return c.Enrichment
}
