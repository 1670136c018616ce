package catalogsync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"catalog-sync/core/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// RunReport describes one completed sync run.
type RunReport struct {
	RunID         uuid.UUID          `json:"run_id"`
	Status        string             `json:"status"`
	StartedAt     time.Time          `json:"started_at"`
	DurationMS    int64              `json:"duration_ms"`
	DryRun        bool               `json:"dry_run"`
	FeedEntries   int                `json:"feed_entries"`
	Listings      int                `json:"listings"`
	FailedBatches int                `json:"failed_batches"`
	Added         AddResult          `json:"added"`
	Available     AvailabilityResult `json:"availability"`
	Error         string             `json:"error,omitempty"`
}

// Service runs sync cycles and remembers the last report.
type Service struct {
	client  FeedClient
	store   OfferStore
	archive *Archiver
	cfg     Config
	feed    string
	logger  *zap.Logger

	group singleflight.Group

	mu   sync.RWMutex
	last *RunReport
}

// NewService creates a sync service. archive may be nil.
func NewService(client FeedClient, store OfferStore, feed string, cfg Config, archive *Archiver, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		store:   store,
		archive: archive,
		cfg:     cfg,
		feed:    feed,
		logger:  logger,
	}
}

// NewPipeline builds a fresh pipeline for one run.
func (s *Service) NewPipeline(logger *zap.Logger) *Pipeline {
	return NewPipeline(s.client, s.store, Options{
		Feed:         s.feed,
		BatchSize:    s.cfg.EffectiveBatchSize(),
		MinAvailable: s.cfg.MinAvailable,
		DryRun:       s.cfg.DryRun,
	}, logger)
}

// LastReport returns the report of the most recent run, or nil.
func (s *Service) LastReport() *RunReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// RunOnce runs Load, Transform, AddNew and UpdateAvailability.
// Calls made while a run is in flight wait for it and share its report.
func (s *Service) RunOnce(ctx context.Context) (*RunReport, error) {
	v, err, shared := s.group.Do("sync", func() (any, error) {
		return s.run(ctx)
	})
	if shared {
		s.logger.Debug("Joined in-flight sync run")
	}
	report, _ := v.(*RunReport)
	return report, err
}

func (s *Service) run(ctx context.Context) (*RunReport, error) {
	if timeout := s.cfg.RunTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	report := &RunReport{
		RunID:     newRunID(),
		StartedAt: start.UTC(),
		DryRun:    s.cfg.DryRun,
	}
	log := s.logger.With(zap.String("run_id", report.RunID.String()))
	log.Info("Sync run started", zap.Bool("dry_run", s.cfg.DryRun))

	err := s.execute(ctx, report, log)

	switch {
	case err != nil:
		report.Status = metrics.StatusFailed
		report.Error = err.Error()
	case report.Available.Suppressed != "":
		report.Status = metrics.StatusSuppressed
	default:
		report.Status = metrics.StatusSuccess
	}

	elapsed := time.Since(start)
	report.DurationMS = elapsed.Milliseconds()
	metrics.ObserveRun(report.Status, elapsed)

	s.mu.Lock()
	s.last = report
	s.mu.Unlock()

	if err != nil {
		log.Error("Sync run failed", zap.Duration("duration", elapsed), zap.Error(err))
		return report, err
	}
	log.Info("Sync run finished",
		zap.String("status", report.Status),
		zap.Duration("duration", elapsed),
		zap.Int("inserted", report.Added.Inserted),
		zap.Int("to_available", report.Available.ToAvailable),
		zap.Int("to_sold_out", report.Available.ToSoldOut))
	return report, nil
}

// execute runs the pipeline stages and fills report. A panic in any stage is
// returned as an error so every caller sharing the run sees a failed report.
func (s *Service) execute(ctx context.Context, report *RunReport, log *zap.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Sync run panicked", zap.Any("panic", r), zap.Stack("stack"))
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	p := s.NewPipeline(log).Load(ctx).Transform(ctx)
	report.FeedEntries = len(p.Entries())
	report.Listings = len(p.Listings())
	report.FailedBatches = p.FailedBatches()

	if s.archive != nil {
		if err := s.archive.Save(ctx, report.RunID, p.Entries(), p.Listings()); err != nil {
			log.Warn("Failed to archive snapshot", zap.Error(err))
		}
	}

	// UpdateAvailability only runs once the new offers are in.
	if report.Added, err = p.AddNew(ctx); err != nil {
		return err
	}
	report.Available, err = p.UpdateAvailability(ctx)
	return err
}

func newRunID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
