package integrity

import (
	"context"
	"errors"

	"catalog-sync/core/storage"
	"catalog-sync/feature/catalog"
	"catalog-sync/feature/catalog/models"
	"catalog-sync/feature/integrity/checks"

	"go.uber.org/zap"
)

// ErrStorageDisabled is returned by CheckStorage when no archive bucket is configured.
var ErrStorageDisabled = errors.New("snapshot archive is disabled")

// Report is the combined result of every check. A check that failed to run
// carries its error instead of a report.
type Report struct {
	Schema       *checks.SchemaReport  `json:"schema,omitempty"`
	SchemaError  string                `json:"schema_error,omitempty"`
	Catalog      *checks.CatalogReport `json:"catalog,omitempty"`
	CatalogError string                `json:"catalog_error,omitempty"`
	Storage      *checks.StorageReport `json:"storage,omitempty"`
	StorageError string                `json:"storage_error,omitempty"`
}

// Healthy reports whether every check ran and found nothing wrong.
// A disabled storage check does not count against health.
func (r *Report) Healthy() bool {
	if r.SchemaError != "" || r.CatalogError != "" {
		return false
	}
	if r.StorageError != "" && r.StorageError != ErrStorageDisabled.Error() {
		return false
	}
	if r.Schema == nil || !r.Schema.Matched {
		return false
	}
	if r.Catalog == nil || r.Catalog.Status == "degraded" {
		return false
	}
	return r.Storage == nil || r.Storage.Exists
}

// Service handles integrity checks.
type Service struct {
	store  *catalog.Store
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewService creates a new integrity service. client may be nil when the
// snapshot archive is disabled.
func NewService(store *catalog.Store, client storage.Client, bucket, prefix string, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// CheckSchema compares the catalog tables with the models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.store.DB(), models.All()...)
}

// CheckCatalog counts offers and malformed configurations.
func (s *Service) CheckCatalog(ctx context.Context) (*checks.CatalogReport, error) {
	return checks.CheckCatalog(ctx, s.store)
}

// CheckStorage inspects the snapshot archive bucket.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	return checks.CheckStorage(ctx, s.client, s.bucket, s.prefix)
}

// RunAll runs every check and never fails as a whole.
func (s *Service) RunAll(ctx context.Context) *Report {
	report := &Report{}

	if schema, err := s.CheckSchema(); err != nil {
		report.SchemaError = err.Error()
	} else {
		report.Schema = schema
	}

	if cat, err := s.CheckCatalog(ctx); err != nil {
		report.CatalogError = err.Error()
	} else {
		report.Catalog = cat
	}

	if st, err := s.CheckStorage(ctx); err != nil {
		report.StorageError = err.Error()
	} else {
		report.Storage = st
	}

	if !report.Healthy() {
		s.logger.Warn("Integrity checks found problems")
	}
	return report
}
