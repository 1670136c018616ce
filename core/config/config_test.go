package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "https://developer.woot.com", cfg.Marketplace.BaseURL)
	assert.Equal(t, "Computers", cfg.Marketplace.Feed)
	assert.Equal(t, 60, cfg.Sync.IntervalMinutes)
	assert.Equal(t, 25, cfg.Sync.BatchSize)
	assert.Equal(t, 1, cfg.Sync.MinAvailable)
	assert.True(t, cfg.Sync.Enabled)
	assert.False(t, cfg.Sync.DryRun)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SYNC_INTERVAL_MINUTES", "15")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("MARKETPLACE_API_KEY", "secret")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Sync.IntervalMinutes)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "secret", cfg.Marketplace.APIKey)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	content := "SERVER_PORT=9090\nSYNC_MIN_AVAILABLE=5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("SYNC_MIN_AVAILABLE")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Sync.MinAvailable)
}

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "oracle" }, "unsupported database driver"},
		{"zero interval", func(c *Config) { c.Sync.IntervalMinutes = 0 }, "interval_minutes"},
		{"batch too large", func(c *Config) { c.Sync.BatchSize = 26 }, "batch_size"},
		{"archive without bucket", func(c *Config) {
			c.Sync.ArchiveSnapshots = true
			c.Storage.Bucket = ""
		}, "storage.bucket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
