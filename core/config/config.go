package config

import (
	"fmt"
	"reflect"
	"strings"

	"catalog-sync/core/database"
	"catalog-sync/core/logger"
	"catalog-sync/core/server"
	"catalog-sync/core/storage"
	"catalog-sync/feature/catalogsync"
	"catalog-sync/feature/marketplace"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage used by the snapshot archive.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the catalog database.
	Database database.Config `mapstructure:"database"`
	// Marketplace holds configuration for the marketplace API client.
	Marketplace marketplace.Config `mapstructure:"marketplace"`
	// Sync holds configuration for the synchronization worker.
	Sync catalogsync.Config `mapstructure:"sync"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if present, overriding the process environment
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	// 2. Register every key with its default from struct tags
	v := viper.New()
	bindValues(v, reflect.TypeOf(Config{}), "")

	// 3. Map environment variables to nested keys (SYNC_INTERVAL_MINUTES -> sync.interval_minutes)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Decode into the typed config
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the settings that would otherwise fail late, at the first sync tick.
func (c *Config) Validate() error {
	if !database.IsSupportedDriver(c.Database.Driver) {
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Sync.IntervalMinutes <= 0 {
		return fmt.Errorf("sync.interval_minutes must be positive, got %d", c.Sync.IntervalMinutes)
	}
	if c.Sync.BatchSize < 1 || c.Sync.BatchSize > marketplace.MaxBatchSize {
		return fmt.Errorf("sync.batch_size must be between 1 and %d, got %d", marketplace.MaxBatchSize, c.Sync.BatchSize)
	}
	if c.Sync.ArchiveSnapshots && c.Storage.Bucket == "" {
		return fmt.Errorf("sync.archive_snapshots requires storage.bucket")
	}
	return nil
}

// bindValues walks the struct type and registers every 'mapstructure' key with its
// 'default' tag, so AutomaticEnv can resolve keys that have no default as well.
func bindValues(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for _, field := range reflect.VisibleFields(t) {
		tag := field.Tag.Get("mapstructure")
		if tag == "" || !field.IsExported() {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, field.Type, key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
