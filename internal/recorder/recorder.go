// Package recorder follows the upstream M3terScan API and stores new blocks together
// with the energy and stablecoin readings of their meters.
package recorder

import (
	"context"
	"errors"
	"time"

	"github.com/m3terscan/m3terscan-backend/pkg/batcher"
	"go.uber.org/zap"
)

// Config tunes the recorder loop.
type Config struct {
	WorkerCount       int
	SleepDuration     time.Duration
	LongSleepDuration time.Duration
	BatchSize         int
	BatchRPS          int
}

// Service polls the source and records new blocks.
type Service struct {
	logger            *zap.Logger
	metrics           Metrics
	sleep             func(context.Context, time.Duration) error
	sleepDuration     time.Duration
	longSleepDuration time.Duration
	blockFetcher      BlockFetcher
	blockProcessor    BlockProcessor
}

// NewService builds a Service with dependencies.
func NewService(cfg Config, source Source, repo Repository, metrics Metrics, logger *zap.Logger) (*Service, error) {
	if source == nil || repo == nil {
		return nil, errors.New("recorder source and repository are required")
	}
	if metrics == nil {
		return nil, errors.New("recorder metrics is required")
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = defaultWorkerCount
	}
	if cfg.SleepDuration <= 0 {
		cfg.SleepDuration = sleepDuration
	}
	if cfg.LongSleepDuration <= 0 {
		cfg.LongSleepDuration = longSleepDuration
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = blockBatcherCapacity
	}
	if cfg.BatchRPS <= 0 {
		cfg.BatchRPS = blockBatcherRPS
	}

	logger = logger.Named("recorder")
	return &Service{
		logger:            logger,
		metrics:           metrics,
		sleep:             sleepWithContext,
		sleepDuration:     cfg.SleepDuration,
		longSleepDuration: cfg.LongSleepDuration,
		blockFetcher: &newBlockFetcher{
			source: source,
			repo:   repo,
		},
		blockProcessor: &blockProcessor{
			source:      source,
			repo:        repo,
			metrics:     metrics,
			workerCount: cfg.WorkerCount,
			batch: batcher.Config{
				Size:     cfg.BatchSize,
				Interval: blockBatcherFlushInterval,
				RPS:      cfg.BatchRPS,
			},
			logger: logger.Named("blockProcessor"),
		},
	}, nil
}

// Run records new blocks until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.sleepDuration))
			if sleepErr := s.sleep(ctx, s.sleepDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *Service) run(ctx context.Context) error {
	started := time.Now()
	blocks, err := s.blockFetcher.Fetch(ctx)
	s.metrics.ObserveFetchBlocks(err, started)
	if err != nil {
		s.logger.Error("fetch new blocks failed", zap.Error(err))
		return err
	}

	if len(blocks) == 0 {
		s.logger.Debug("no new blocks; sleeping", zap.Duration("sleep", s.longSleepDuration))
		return s.sleep(ctx, s.longSleepDuration)
	}

	s.logger.Info("recording blocks",
		zap.Int("blocks", len(blocks)),
		zap.Int("from", blocks[0].Number),
		zap.Int("to", blocks[len(blocks)-1].Number),
	)
	started = time.Now()
	err = s.blockProcessor.Process(ctx, blocks)
	s.metrics.ObserveProcessBatch(err, len(blocks), started)
	if err != nil {
		return err
	}

	return s.sleep(ctx, s.sleepDuration)
}

// sleepWithContext waits for d or returns early with the context error.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
