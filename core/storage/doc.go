// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface the sync snapshot
// archive and the integrity checks need. Both AWS S3 and self-hosted MinIO work.
//
// # Operations
//
//   - BucketExists / MakeBucket: bucket checks, combined in EnsureBucket.
//   - PutObject: uploads run snapshots.
//   - ListObjects: enumerates archived snapshots, see CountObjects.
//
// The interface is mocked in core/storage/mocks for unit tests.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
