package catalogsync

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Runner runs one sync cycle.
type Runner interface {
	RunOnce(ctx context.Context) (*RunReport, error)
}

// Scheduler drives a Runner on a fixed interval until its context is cancelled.
// A failed or panicking cycle is logged and the loop keeps going.
type Scheduler struct {
	name       string
	runner     Runner
	interval   time.Duration
	runOnStart bool
	logger     *zap.Logger
}

// NewScheduler creates a scheduler. A non-positive interval defaults to one hour.
func NewScheduler(name string, runner Runner, interval time.Duration, runOnStart bool, logger *zap.Logger) *Scheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Scheduler{
		name:       name,
		runner:     runner,
		interval:   interval,
		runOnStart: runOnStart,
		logger:     logger.With(zap.String("worker", name)),
	}
}

// Run blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("Worker started",
		zap.Duration("interval", s.interval),
		zap.Bool("run_on_start", s.runOnStart))
	defer s.logger.Info("Worker stopped")

	if !s.runOnStart && !s.wait(ctx) {
		return
	}

	for {
		if ctx.Err() != nil {
			return
		}
		if err := s.tick(ctx); err != nil {
			s.logger.Error("Sync cycle failed", zap.Error(err))
		}
		if !s.wait(ctx) {
			return
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	_, err = s.runner.RunOnce(ctx)
	return err
}

// wait sleeps one interval and reports whether the loop should continue.
func (s *Scheduler) wait(ctx context.Context) bool {
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
