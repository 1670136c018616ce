package checks

import (
	"context"
	"fmt"
	"strings"

	"catalog-sync/core/storage"
)

// StorageReport describes the snapshot archive bucket.
type StorageReport struct {
	Bucket    string `json:"bucket"`
	Prefix    string `json:"prefix"`
	Exists    bool   `json:"exists"`
	Snapshots int    `json:"snapshot_files"`
}

// CheckStorage verifies the archive bucket exists and counts snapshot files under prefix.
func CheckStorage(ctx context.Context, client storage.Client, bucket, prefix string) (*StorageReport, error) {
	report := &StorageReport{Bucket: bucket, Prefix: prefix}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.Exists = exists
	if !exists {
		return report, nil
	}

	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	report.Snapshots, err = storage.CountObjects(ctx, client, bucket, prefix)
	if err != nil {
		return nil, err
	}
	return report, nil
}
