package catalogsync

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type runnerFunc func(ctx context.Context) (*RunReport, error)

func (f runnerFunc) RunOnce(ctx context.Context) (*RunReport, error) {
	return f(ctx)
}

func runScheduler(ctx context.Context, s *Scheduler) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run(ctx)
	}()
	return done
}

func TestScheduler_RecoversAndKeepsRunning(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	runner := runnerFunc(func(ctx context.Context) (*RunReport, error) {
		switch calls.Add(1) {
		case 1:
			panic("nil listing")
		case 2:
			return nil, errors.New("database is locked")
		case 3:
			cancel()
		}
		return &RunReport{}, nil
	})

	s := NewScheduler("woot-sync", runner, 5*time.Millisecond, true, zap.New(core))
	select {
	case <-runScheduler(ctx, s):
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}

	assert.Equal(t, int32(3), calls.Load())

	failures := logs.FilterMessage("Sync cycle failed").All()
	if assert.Len(t, failures, 2) {
		assert.Equal(t, "woot-sync", failures[0].ContextMap()["worker"])
		assert.Contains(t, failures[0].ContextMap()["error"], "nil listing")
	}
}

func TestScheduler_StopsDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32
	runner := runnerFunc(func(ctx context.Context) (*RunReport, error) {
		calls.Add(1)
		return &RunReport{}, nil
	})

	s := NewScheduler("woot-sync", runner, time.Hour, false, zap.NewNop())
	done := runScheduler(ctx, s)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.Zero(t, calls.Load())
}

func TestScheduler_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	runner := runnerFunc(func(ctx context.Context) (*RunReport, error) {
		calls.Add(1)
		return nil, nil
	})

	<-runScheduler(ctx, NewScheduler("woot-sync", runner, time.Millisecond, true, zap.NewNop()))
	assert.Zero(t, calls.Load())
}

func TestNewScheduler_DefaultInterval(t *testing.T) {
	s := NewScheduler("woot-sync", runnerFunc(nil), 0, true, zap.NewNop())
	assert.Equal(t, time.Hour, s.interval)
}
