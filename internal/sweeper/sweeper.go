package sweeper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// FreezeSweeper freezes accounts that have been inactive past the freeze window.
type FreezeSweeper interface {
	SweepFrozen(ctx context.Context, limit int) (int, error)
}

// Options configures a Sweeper.
type Options struct {
	Interval  time.Duration
	BatchSize int
	Logger    *zap.Logger
}

// Sweeper runs the freeze sweep on a fixed interval.
type Sweeper struct {
	target    FreezeSweeper
	scheduler gocron.Scheduler
	interval  time.Duration
	batchSize int
	logger    *zap.Logger
}

// New validates options and prepares an idle scheduler.
func New(target FreezeSweeper, options Options) (*Sweeper, error) {
	if target == nil {
		return nil, errors.New("sweeper: freeze target is required")
	}
	if options.Interval <= 0 {
		return nil, fmt.Errorf("sweeper: interval must be positive, got %s", options.Interval)
	}
	if options.BatchSize <= 0 {
		return nil, fmt.Errorf("sweeper: batch size must be positive, got %d", options.BatchSize)
	}
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("sweeper: scheduler: %w", err)
	}
	return &Sweeper{
		target:    target,
		scheduler: scheduler,
		interval:  options.Interval,
		batchSize: options.BatchSize,
		logger:    logger.Named("freeze_sweeper"),
	}, nil
}

// Start schedules the sweep, running it once immediately. Runs never overlap.
func (sweeper *Sweeper) Start(ctx context.Context) error {
	_, err := sweeper.scheduler.NewJob(
		gocron.DurationJob(sweeper.interval),
		gocron.NewTask(func() {
			_, _ = sweeper.RunOnce(ctx)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("sweeper: schedule: %w", err)
	}
	sweeper.scheduler.Start()
	sweeper.logger.Info("freeze sweep scheduled", zap.Duration("interval", sweeper.interval), zap.Int("batch_size", sweeper.batchSize))
	return nil
}

// RunOnce sweeps a single batch and logs the outcome.
func (sweeper *Sweeper) RunOnce(ctx context.Context) (int, error) {
	frozen, err := sweeper.target.SweepFrozen(ctx, sweeper.batchSize)
	if err != nil {
		sweeper.logger.Error("freeze sweep failed", zap.Int("frozen", frozen), zap.Error(err))
		return frozen, err
	}
	sweeper.logger.Info("freeze sweep finished", zap.Int("frozen", frozen))
	return frozen, nil
}

// Shutdown stops the scheduler and waits for a running sweep to finish.
func (sweeper *Sweeper) Shutdown() error {
	return sweeper.scheduler.Shutdown()
}
