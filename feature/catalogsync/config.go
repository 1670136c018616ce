package catalogsync

import (
	"time"

	"catalog-sync/feature/marketplace"
)

// Config holds configuration for the synchronization worker.
type Config struct {
	// Enabled starts the periodic worker together with the HTTP server.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// IntervalMinutes is the delay between two runs.
	IntervalMinutes int `mapstructure:"interval_minutes" default:"60"`
	// RunOnStart runs the first cycle immediately instead of after one interval.
	RunOnStart bool `mapstructure:"run_on_start" default:"true"`
	// RunTimeoutSeconds bounds a single run. Zero means no bound.
	RunTimeoutSeconds int `mapstructure:"run_timeout_seconds" default:"0"`
	// BatchSize is the number of ids per full-record request.
	BatchSize int `mapstructure:"batch_size" default:"25"`
	// MinAvailable is the smallest number of available offers an availability update may leave.
	MinAvailable int `mapstructure:"min_available" default:"1"`
	// DryRun plans every write but commits nothing.
	DryRun bool `mapstructure:"dry_run" default:"false"`
	// ArchiveSnapshots writes the raw feed and listings of every run to object storage.
	ArchiveSnapshots bool `mapstructure:"archive_snapshots" default:"false"`
	// ArchivePrefix is the object key prefix for snapshots.
	ArchivePrefix string `mapstructure:"archive_prefix" default:"snapshots"`
}

// Interval returns the delay between runs, defaulting to one hour.
func (c Config) Interval() time.Duration {
	if c.IntervalMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.IntervalMinutes) * time.Minute
}

// RunTimeout returns the per-run deadline, or 0 when runs are unbounded.
func (c Config) RunTimeout() time.Duration {
	if c.RunTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.RunTimeoutSeconds) * time.Second
}

// EffectiveBatchSize clamps BatchSize to the marketplace limit.
func (c Config) EffectiveBatchSize() int {
	if c.BatchSize <= 0 || c.BatchSize > marketplace.MaxBatchSize {
		return marketplace.MaxBatchSize
	}
	return c.BatchSize
}
