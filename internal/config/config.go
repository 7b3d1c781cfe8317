// Package config loads DriveNeutral configuration from YAML with
// environment overrides. Defaults are always valid: a missing file and
// an empty environment yield a working seed-backed setup.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/driveneutral/driveneutral/internal/catalog"
	"github.com/driveneutral/driveneutral/internal/logging"
	"github.com/driveneutral/driveneutral/internal/pricing"
)

// Config is the full application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty"`
	Catalog CatalogConfig `yaml:"catalog,omitempty" json:"catalog,omitempty"`
	Pricing PricingConfig `yaml:"pricing,omitempty" json:"pricing,omitempty"`
	Store   StoreConfig   `yaml:"store,omitempty"   json:"store,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"  json:"server,omitempty"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is a zerolog level name; invalid values fall back to info.
	Level string `yaml:"level,omitempty" json:"level,omitempty"`

	// Format is "console" or "json".
	Format string `yaml:"format,omitempty" json:"format,omitempty"`

	// File, when set, receives logs in addition to stderr.
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// ToLoggingConfig bridges the configuration to the logging package.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		File:   lc.File,
	}
}

// CatalogConfig controls the vehicle catalog cache.
type CatalogConfig struct {
	TTL time.Duration `yaml:"ttl,omitempty" json:"ttl,omitempty"`
}

// PricingConfig controls on-road price calculations.
type PricingConfig struct {
	// City selects the RTO and registration rates; unknown cities use
	// the default city's rates.
	City string `yaml:"city,omitempty" json:"city,omitempty"`
}

// StoreConfig selects the vehicle data source.
type StoreConfig struct {
	// DSN is a PostgreSQL connection string. Empty selects the
	// built-in seed catalog.
	DSN string `yaml:"dsn,omitempty" json:"dsn,omitempty"`
}

// ServerConfig controls the HTTP API listener.
type ServerConfig struct {
	Addr string `yaml:"addr,omitempty" json:"addr,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Catalog: CatalogConfig{
			TTL: catalog.DefaultTTL,
		},
		Pricing: PricingConfig{
			City: pricing.DefaultCity,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load builds a Config from defaults, the optional YAML file at path,
// and finally environment overrides. An empty path skips the file; a
// missing file at an explicit path is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// Environment variable names recognized by applyEnv. DATABASE_URL is
// honored as a conventional alias for the store DSN.
const (
	EnvLogLevel   = "DRIVENEUTRAL_LOG_LEVEL"
	EnvLogFormat  = "DRIVENEUTRAL_LOG_FORMAT"
	EnvLogFile    = "DRIVENEUTRAL_LOG_FILE"
	EnvCatalogTTL = "DRIVENEUTRAL_CATALOG_TTL"
	EnvCity       = "DRIVENEUTRAL_CITY"
	EnvStoreDSN   = "DRIVENEUTRAL_DB_DSN"
	EnvDatabase   = "DATABASE_URL"
	EnvServerAddr = "DRIVENEUTRAL_ADDR"
)

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv(EnvCatalogTTL); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil && ttl > 0 {
			c.Catalog.TTL = ttl
		}
	}
	if v := os.Getenv(EnvCity); v != "" {
		c.Pricing.City = v
	}
	if v := os.Getenv(EnvStoreDSN); v != "" {
		c.Store.DSN = v
	} else if v := os.Getenv(EnvDatabase); v != "" && c.Store.DSN == "" {
		c.Store.DSN = v
	}
	if v := os.Getenv(EnvServerAddr); v != "" {
		c.Server.Addr = v
	}
}
