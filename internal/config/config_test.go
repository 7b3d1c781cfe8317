package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 10*time.Minute, cfg.Catalog.TTL)
	assert.Equal(t, "New Delhi", cfg.Pricing.City)
	assert.Empty(t, cfg.Store.DSN)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logging:
  level: debug
catalog:
  ttl: 5m
store:
  dsn: postgres://localhost/driveneutral
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 5*time.Minute, cfg.Catalog.TTL)
	assert.Equal(t, "postgres://localhost/driveneutral", cfg.Store.DSN)
	// Untouched sections keep their defaults.
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "New Delhi", cfg.Pricing.City)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [not a map"), 0600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "trace")
	t.Setenv(EnvCatalogTTL, "30s")
	t.Setenv(EnvCity, "Mumbai")
	t.Setenv(EnvStoreDSN, "postgres://env/dn")
	t.Setenv(EnvServerAddr, ":9090")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "trace", cfg.Logging.Level)
	assert.Equal(t, 30*time.Second, cfg.Catalog.TTL)
	assert.Equal(t, "Mumbai", cfg.Pricing.City)
	assert.Equal(t, "postgres://env/dn", cfg.Store.DSN)
	assert.Equal(t, ":9090", cfg.Server.Addr)
}

func TestDatabaseURLFallback(t *testing.T) {
	t.Setenv(EnvDatabase, "postgres://fallback/dn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://fallback/dn", cfg.Store.DSN)
}

func TestStoreDSNEnvBeatsDatabaseURL(t *testing.T) {
	t.Setenv(EnvStoreDSN, "postgres://primary/dn")
	t.Setenv(EnvDatabase, "postgres://fallback/dn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://primary/dn", cfg.Store.DSN)
}

func TestInvalidTTLEnvIgnored(t *testing.T) {
	t.Setenv(EnvCatalogTTL, "soon")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Catalog.TTL, cfg.Catalog.TTL)
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "warn", Format: "json", File: "/tmp/dn.log"}
	bridged := lc.ToLoggingConfig()

	assert.Equal(t, "warn", bridged.Level)
	assert.Equal(t, "json", bridged.Format)
	assert.Equal(t, "/tmp/dn.log", bridged.File)
}
