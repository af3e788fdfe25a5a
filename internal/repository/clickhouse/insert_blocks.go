package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/m3terscan/m3terscan-backend/internal/model"
	"github.com/m3terscan/m3terscan-backend/pkg/safe"
)

// InsertBlocks stores block rows in ClickHouse.
func (r *Repository) InsertBlocks(ctx context.Context, blocks []model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	const query = `
INSERT INTO m3ter_blocks (
	number,
	address,
	status,
	proposer,
	meter_id,
	created_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, block := range blocks {
		var number uint64
		if number, err = safe.Uint64(block.Number); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("block number: %w", err)
		}
		if err = batch.Append(
			number,
			block.Address,
			string(block.Status),
			block.Proposer,
			block.MeterID,
			block.CreatedAt.UTC(),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append block: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}
