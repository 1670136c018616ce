package storage

import (
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Config holds configuration for the S3-compatible store that receives sync snapshots.
type Config struct {
	// Endpoint is host:port of the storage service. A URL scheme is tolerated and stripped.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket receives the sync snapshots.
	Bucket string `mapstructure:"bucket" default:"catalog-sync"`
	// Region is used when the bucket has to be created. Empty means the server default.
	Region         string `mapstructure:"region" default:""`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" default:"30"`
}

// Host returns the endpoint without a URL scheme, as minio expects it.
func (c Config) Host() string {
	host := strings.TrimPrefix(c.Endpoint, "http://")
	return strings.TrimPrefix(host, "https://")
}

// Timeout returns the dial and response timeout, 30s when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
