package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/m3terscan/m3terscan-backend/internal/model"
)

// InsertEnergyUsage stores hourly readings. Rows for the same meter and hour replace
// earlier ones.
func (r *Repository) InsertEnergyUsage(ctx context.Context, rows []model.HourlyEnergyUsage) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_energy_usage", err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	const query = `
INSERT INTO m3ter_energy_usage (
	meter_id,
	hour,
	energy_used,
	reading_timestamp,
	recorded_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare energy usage batch: %w", err)
	}

	recordedAt := time.Now().UTC()
	for _, row := range rows {
		if err = batch.Append(row.MeterID, row.Hour, row.EnergyUsed, row.Timestamp, recordedAt); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append energy usage: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert energy usage: %w", err)
	}
	return nil
}

// EnergyUsage returns the latest hourly readings, of meterID only when set.
func (r *Repository) EnergyUsage(ctx context.Context, _ []model.Block, meterID string) (out []model.HourlyEnergyUsage, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("energy_usage", err, start)
	}()

	const query = `
SELECT meter_id, hour, energy_used, reading_timestamp
FROM m3ter_energy_usage FINAL
WHERE ? = '' OR meter_id = ?
ORDER BY meter_id, hour`

	rows, err := r.conn.Query(ctx, query, meterID, meterID)
	if err != nil {
		return nil, fmt.Errorf("query energy usage: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	out = make([]model.HourlyEnergyUsage, 0)
	for rows.Next() {
		var row model.HourlyEnergyUsage
		if err = rows.Scan(&row.MeterID, &row.Hour, &row.EnergyUsed, &row.Timestamp); err != nil {
			return nil, fmt.Errorf("scan energy usage: %w", err)
		}
		out = append(out, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate energy usage: %w", err)
	}
	return out, nil
}
