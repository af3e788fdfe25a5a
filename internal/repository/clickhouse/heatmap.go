package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/m3terscan/m3terscan-backend/internal/meter"
	"github.com/m3terscan/m3terscan-backend/internal/model"
)

// Heatmap counts the blocks recorded per day and meter in year and lays them out as a
// calendar heatmap.
func (r *Repository) Heatmap(ctx context.Context, _ []model.Block, year int, meterID string) (days []model.HeatmapDay, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("heatmap", err, start)
	}()

	const query = `
SELECT toString(toDate(created_at, ?)) AS day, meter_id, count() AS blocks
FROM m3ter_blocks FINAL
WHERE toYear(toDate(created_at, ?)) = ? AND (? = '' OR meter_id = ?)
GROUP BY day, meter_id
ORDER BY day, meter_id`

	tz := r.loc.String()
	rows, err := r.conn.Query(ctx, query, tz, tz, year, meterID, meterID)
	if err != nil {
		return nil, fmt.Errorf("query heatmap: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	index := make(meter.DayBlocks)
	for rows.Next() {
		var (
			day   string
			owner string
			count uint64
		)
		if err = rows.Scan(&day, &owner, &count); err != nil {
			return nil, fmt.Errorf("scan heatmap day: %w", err)
		}
		for range count {
			index[day] = append(index[day], owner)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate heatmap: %w", err)
	}
	return meter.HeatmapFromCounts(year, meterID, index), nil
}
