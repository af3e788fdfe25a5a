// Package meter derives per-meter energy usage, stablecoin valuations and calendar
// heatmaps from block records.
package meter

import (
	"fmt"
	"math"

	"github.com/m3terscan/m3terscan-backend/internal/model"
)

// Rand is the random source used by the generators; *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

const (
	fallbackMeterDate = "2025-01-01"

	minUsageVariation   = 0.7
	usageVariationRange = 0.6
)

var hours = func() []string {
	out := make([]string, 24)
	for i := range out {
		out[i] = fmt.Sprintf("%02d:00", i)
	}
	return out
}()

// Hours returns the 24 hour slot labels "00:00".."23:00".
func Hours() []string {
	return append([]string(nil), hours...)
}

// ActivityLevel is the share of all blocks that were recorded by one meter.
func ActivityLevel(meterBlocks, totalBlocks int) float64 {
	if totalBlocks == 0 {
		return 0
	}
	return float64(meterBlocks) / float64(totalBlocks)
}

// BaseUsage is the hourly kWh a meter with the given activity level oscillates around.
func BaseUsage(activity float64) float64 {
	return 5 + activity*20
}

// HourlyEnergyUsage synthesizes 24 hourly rows for every meter present in blocks.
func HourlyEnergyUsage(blocks []model.Block, rnd Rand) []model.HourlyEnergyUsage {
	meterIDs := model.MeterIDs(blocks)
	rows := make([]model.HourlyEnergyUsage, 0, len(meterIDs)*len(hours))

	for _, meterID := range meterIDs {
		meterBlocks := model.BlocksOfMeter(blocks, meterID)
		base := BaseUsage(ActivityLevel(len(meterBlocks), len(blocks)))

		date := fallbackMeterDate
		if len(meterBlocks) > 0 && meterBlocks[0].Date != "" {
			date = meterBlocks[0].Date
		}

		for _, hour := range hours {
			variation := minUsageVariation + rnd.Float64()*usageVariationRange
			rows = append(rows, model.HourlyEnergyUsage{
				MeterID:    meterID,
				Hour:       hour,
				EnergyUsed: round(base*variation, 1),
				Timestamp:  date + " " + hour,
			})
		}
	}
	return rows
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
