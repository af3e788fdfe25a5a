package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/m3terscan/m3terscan-backend/internal/model"
	"github.com/m3terscan/m3terscan-backend/pkg/safe"
)

// Blocks returns the most recent blocks, newest first.
func (r *Repository) Blocks(ctx context.Context) (blocks []model.Block, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("blocks", err, start)
	}()

	const query = `
SELECT number, address, status, proposer, meter_id, created_at
FROM m3ter_blocks FINAL
ORDER BY number DESC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, r.blocksLimit)
	if err != nil {
		return nil, fmt.Errorf("query blocks: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	blocks = make([]model.Block, 0)
	for rows.Next() {
		var (
			number    uint64
			status    string
			createdAt time.Time
			b         model.Block
		)
		if err = rows.Scan(&number, &b.Address, &status, &b.Proposer, &b.MeterID, &createdAt); err != nil {
			return nil, fmt.Errorf("scan block: %w", err)
		}
		if b.Number, err = safe.Int(number); err != nil {
			return nil, fmt.Errorf("block number: %w", err)
		}
		local := createdAt.In(r.loc)
		b.Status = model.BlockStatus(status)
		b.Date = local.Format(model.BlockDateLayout)
		b.Time = local.Format(model.BlockTimeLayout)
		b.CreatedAt = createdAt
		blocks = append(blocks, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blocks: %w", err)
	}
	return blocks, nil
}
