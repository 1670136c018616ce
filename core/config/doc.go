// Package config provides configuration management for catalog-sync.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults live next to each field in a `default` struct tag.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: catalog store connection (mysql, postgres or sqlite)
//   - Storage: S3/MinIO credentials and the snapshot bucket
//   - Log: logging level and format
//   - Marketplace: feed API base URL, key, feed name and request pacing
//   - Sync: worker interval, batch size, availability guard and archive settings
//
// Nested keys map to environment variables by replacing dots with underscores,
// so sync.interval_minutes is read from SYNC_INTERVAL_MINUTES.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
