package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/m3terscan/m3terscan-backend/pkg/safe"
)

// MaxBlockNumber returns the highest block number stored, zero when there are none.
func (r *Repository) MaxBlockNumber(ctx context.Context) (int, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_block_number", err, start)
	}()

	const query = `
SELECT coalesce(max(number), toUInt64(0)) AS max_number
FROM m3ter_blocks`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("query max block number: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var number uint64
	if !rows.Next() {
		err = fmt.Errorf("max block number not found")
		return 0, err
	}
	if err = rows.Scan(&number); err != nil {
		return 0, fmt.Errorf("scan max block number: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate max block number: %w", err)
	}

	n, err := safe.Int(number)
	if err != nil {
		return 0, fmt.Errorf("max block number: %w", err)
	}
	return n, nil
}
