package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/m3terscan/m3terscan-backend/internal/model"
	"github.com/m3terscan/m3terscan-backend/pkg/safe"
)

// globalMeterID marks the reference valuations in m3ter_stablecoins.
const globalMeterID = ""

// InsertStablecoins stores valuations of meterID, or the reference list when meterID is
// empty.
func (r *Repository) InsertStablecoins(ctx context.Context, meterID string, coins []model.StablecoinValuation) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_stablecoins", err, start)
	}()

	if len(coins) == 0 {
		return nil
	}

	const query = `
INSERT INTO m3ter_stablecoins (
	meter_id,
	position,
	symbol,
	network,
	usd_value,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare stablecoins batch: %w", err)
	}

	updatedAt := time.Now().UTC()
	for i, c := range coins {
		var position uint16
		if position, err = safe.Uint16(i); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("stablecoin position: %w", err)
		}
		if err = batch.Append(meterID, position, c.Symbol, c.Network, c.Value, updatedAt); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append stablecoin: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert stablecoins: %w", err)
	}
	return nil
}

// Stablecoins returns the reference valuations and those of every meter, or of meterID
// only when set.
func (r *Repository) Stablecoins(ctx context.Context, _ []model.Block, meterID string) (set model.StablecoinSet, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("stablecoins", err, start)
	}()

	const query = `
SELECT meter_id, symbol, network, usd_value
FROM m3ter_stablecoins FINAL
WHERE meter_id = '' OR ? = '' OR meter_id = ?
ORDER BY meter_id, position`

	rows, err := r.conn.Query(ctx, query, meterID, meterID)
	if err != nil {
		return model.StablecoinSet{}, fmt.Errorf("query stablecoins: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	set = model.StablecoinSet{
		Global:   []model.StablecoinValuation{},
		PerMeter: map[string][]model.StablecoinValuation{},
	}
	for rows.Next() {
		var (
			owner string
			c     model.StablecoinValuation
		)
		if err = rows.Scan(&owner, &c.Symbol, &c.Network, &c.Value); err != nil {
			return model.StablecoinSet{}, fmt.Errorf("scan stablecoin: %w", err)
		}
		if owner == globalMeterID {
			set.Global = append(set.Global, c)
			continue
		}
		set.PerMeter[owner] = append(set.PerMeter[owner], c)
	}
	if err = rows.Err(); err != nil {
		return model.StablecoinSet{}, fmt.Errorf("iterate stablecoins: %w", err)
	}
	return set, nil
}
