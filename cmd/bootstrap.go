package cmd

import (
	"context"
	"fmt"

	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/logger"
	"catalog-sync/core/storage"
	"catalog-sync/feature/catalog"
	"catalog-sync/feature/catalogsync"
	"catalog-sync/feature/marketplace"

	"go.uber.org/zap"
)

// loadRuntime loads and validates configuration and builds the logger.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}

// openCatalog connects to the database and migrates the catalog schema.
func openCatalog(cfg *config.Config) (*catalog.Store, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}

	store := catalog.NewStore(db)
	if err := store.Migrate(); err != nil {
		return nil, err
	}
	return store, nil
}

// openArchive returns the object storage client when snapshot archiving is on,
// creating the bucket if needed. It returns nil when archiving is off.
func openArchive(ctx context.Context, cfg *config.Config) (storage.Client, error) {
	if !cfg.Sync.ArchiveSnapshots {
		return nil, nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, err
	}
	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
		return nil, err
	}
	return client, nil
}

// newSyncService wires the marketplace client, store and optional archive.
func newSyncService(cfg *config.Config, store *catalog.Store, objects storage.Client, logg *zap.Logger) *catalogsync.Service {
	var archive *catalogsync.Archiver
	if objects != nil {
		archive = catalogsync.NewArchiver(objects, cfg.Storage.Bucket, cfg.Sync.ArchivePrefix, logg)
	}

	client := marketplace.NewClient(cfg.Marketplace, logg)
	return catalogsync.NewService(client, store, cfg.Marketplace.Feed, cfg.Sync, archive, logg)
}
