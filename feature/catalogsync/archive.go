package catalogsync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"

	"catalog-sync/core/storage"
	"catalog-sync/feature/marketplace"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Archiver writes the raw inputs of a run to object storage for later inspection.
type Archiver struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewArchiver creates a snapshot archiver.
func NewArchiver(client storage.Client, bucket, prefix string, logger *zap.Logger) *Archiver {
	return &Archiver{client: client, bucket: bucket, prefix: prefix, logger: logger}
}

// Prefix returns the key prefix snapshots are written under.
func (a *Archiver) Prefix() string {
	return a.prefix
}

// SnapshotKey returns the object key of a snapshot file for a run.
func (a *Archiver) SnapshotKey(runID uuid.UUID, name string) string {
	return path.Join(a.prefix, runID.String(), name)
}

// Save uploads feed.json and listings.json for a run.
// Both uploads are attempted; the returned error joins whichever failed.
func (a *Archiver) Save(ctx context.Context, runID uuid.UUID, entries []marketplace.FeedEntry, listings []marketplace.Listing) error {
	if entries == nil {
		entries = []marketplace.FeedEntry{}
	}
	if listings == nil {
		listings = []marketplace.Listing{}
	}

	err := errors.Join(
		a.put(ctx, a.SnapshotKey(runID, "feed.json"), entries),
		a.put(ctx, a.SnapshotKey(runID, "listings.json"), listings),
	)
	if err != nil {
		return err
	}

	a.logger.Debug("Snapshot archived",
		zap.String("bucket", a.bucket),
		zap.String("run_id", runID.String()))
	return nil
}

func (a *Archiver) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}
