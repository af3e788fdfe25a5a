package httpapi

import (
	"math"
	"time"

	"github.com/m3terscan/m3terscan-backend/internal/model"
)

func toBlocks(in []blockDTO, loc *time.Location) []model.Block {
	out := make([]model.Block, 0, len(in))
	for _, b := range in {
		created := b.CreatedAt.In(loc)
		out = append(out, model.Block{
			Number:    b.BlockNumber,
			Address:   b.BlockAddress,
			Status:    model.BlockStatus(b.BlockStatus),
			Date:      created.Format(model.BlockDateLayout),
			Time:      created.Format(model.BlockTimeLayout),
			Proposer:  b.ProposerName,
			MeterID:   b.MeterID,
			CreatedAt: b.CreatedAt,
		})
	}
	return out
}

func toEnergyUsage(in []energyUsageDTO) []model.HourlyEnergyUsage {
	out := make([]model.HourlyEnergyUsage, 0, len(in))
	for _, r := range in {
		out = append(out, model.HourlyEnergyUsage{
			MeterID:    r.MeterID,
			Hour:       r.Hour,
			EnergyUsed: r.EnergyUsedKwh,
			Timestamp:  r.ReadingTimestamp,
		})
	}
	return out
}

func toValuations(in []stablecoinDTO) []model.StablecoinValuation {
	out := make([]model.StablecoinValuation, 0, len(in))
	for _, c := range in {
		out = append(out, model.StablecoinValuation{
			Symbol:  c.CurrencySymbol,
			Network: c.NetworkName,
			Value:   c.USDValue,
		})
	}
	return out
}

func toStablecoinSet(in stablecoinsDTO) model.StablecoinSet {
	set := model.StablecoinSet{
		Global:   toValuations(in.GlobalStablecoins),
		PerMeter: make(map[string][]model.StablecoinValuation, len(in.MeterStablecoins)),
	}
	for meterID, coins := range in.MeterStablecoins {
		set.PerMeter[meterID] = toValuations(coins)
	}
	return set
}

// toHeatmap clamps energyValue to the 0..100 activity scale.
func toHeatmap(in []heatmapDayDTO) []model.HeatmapDay {
	out := make([]model.HeatmapDay, 0, len(in))
	for _, d := range in {
		value := int(math.Round(d.EnergyValue))
		out = append(out, model.HeatmapDay{
			Date:    d.Date,
			Value:   max(0, min(value, 100)),
			Month:   d.Month,
			Day:     d.Day,
			Weekday: d.Weekday,
			Week:    d.Week,
			MeterID: d.MeterID,
		})
	}
	return out
}
