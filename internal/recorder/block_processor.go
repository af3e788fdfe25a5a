package recorder

import (
	"context"
	"fmt"

	"github.com/m3terscan/m3terscan-backend/internal/model"
	"github.com/m3terscan/m3terscan-backend/pkg/batcher"
	"github.com/m3terscan/m3terscan-backend/pkg/workerpool"
	"go.uber.org/zap"
)

// blockProcessor stores new blocks, then refreshes the readings of every meter that
// appears in them.
type blockProcessor struct {
	source      Source
	repo        Repository
	metrics     Metrics
	workerCount int
	batch       batcher.Config
	logger      *zap.Logger
}

func (p *blockProcessor) Process(ctx context.Context, blocks []model.Block) error {
	if len(blocks) == 0 {
		return nil
	}

	if err := p.writeBlocks(ctx, blocks); err != nil {
		return err
	}

	coins, err := p.source.Stablecoins(ctx, blocks, "")
	if err != nil {
		return fmt.Errorf("fetch stablecoins: %w", err)
	}
	if err := p.repo.InsertStablecoins(ctx, "", coins.Global); err != nil {
		return fmt.Errorf("store reference stablecoins: %w", err)
	}

	meterIDs := model.MeterIDs(blocks)
	p.logger.Info("syncing meters", zap.Int("meters", len(meterIDs)))
	return workerpool.Process(ctx, p.workerCount, meterIDs, func(ctx context.Context, meterID string) error {
		err := p.syncMeter(ctx, blocks, meterID)
		p.metrics.ObserveSyncMeter(err)
		if err != nil {
			p.logger.Error("sync meter failed", zap.String("meter_id", meterID), zap.Error(err))
		}
		return err
	})
}

func (p *blockProcessor) writeBlocks(ctx context.Context, blocks []model.Block) error {
	b := batcher.New(p.logger.Named("blockBatcher"), p.batch, p.repo.InsertBlocks)
	b.Start(ctx)

	for _, block := range blocks {
		if err := b.Add(ctx, block); err != nil {
			_ = b.Stop()
			return err
		}
	}
	if err := b.Stop(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return ctx.Err()
}

func (p *blockProcessor) syncMeter(ctx context.Context, blocks []model.Block, meterID string) error {
	rows, err := p.source.EnergyUsage(ctx, blocks, meterID)
	if err != nil {
		return fmt.Errorf("fetch energy usage of %s: %w", meterID, err)
	}
	if err := p.repo.InsertEnergyUsage(ctx, model.EnergyUsageOfMeter(rows, meterID)); err != nil {
		return fmt.Errorf("store energy usage of %s: %w", meterID, err)
	}

	coins, err := p.source.Stablecoins(ctx, blocks, meterID)
	if err != nil {
		return fmt.Errorf("fetch stablecoins of %s: %w", meterID, err)
	}
	if err := p.repo.InsertStablecoins(ctx, meterID, coins.PerMeter[meterID]); err != nil {
		return fmt.Errorf("store stablecoins of %s: %w", meterID, err)
	}
	return nil
}
