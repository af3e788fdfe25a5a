package store

import (
	"context"

	"github.com/m3terscan/m3terscan-backend/internal/model"
)

// SelectMeterID narrows every current view to meterID and regenerates its heatmap for
// the selected year. Fetches issued before the change are dropped when they finish.
func (s *Store) SelectMeterID(ctx context.Context, meterID string) error {
	if meterID == "" {
		return ErrEmptyMeterID
	}
	var year int
	err := s.update(ctx, ResourceSelection, func(st *State) error {
		s.invalidate(ResourceEnergyUsage, ResourceStablecoins, ResourceHeatmap)
		st.SelectedMeterID = meterID
		st.MeterBlocks = model.BlocksOfMeter(st.Blocks, meterID)
		st.HourlyEnergyUsage = model.EnergyUsageOfMeter(st.AllHourlyEnergyUsage, meterID)
		st.Stablecoins = cloneSlice(st.AllMeterStablecoins[meterID])
		st.Heatmap = model.HeatmapOfMeter(st.AllHeatmap, meterID)
		year = st.HeatmapYear
		return nil
	})
	if err != nil {
		return err
	}
	return s.GenerateHeatmapData(ctx, year, meterID)
}

// ClearSelectedMeterID drops the selection and empties every current view. The
// all-meter collections are kept.
func (s *Store) ClearSelectedMeterID(ctx context.Context) error {
	return s.update(ctx, ResourceSelection, func(st *State) error {
		s.invalidate(ResourceEnergyUsage, ResourceStablecoins, ResourceHeatmap)
		st.SelectedMeterID = ""
		st.MeterBlocks = []model.Block{}
		st.HourlyEnergyUsage = []model.HourlyEnergyUsage{}
		st.Stablecoins = []model.StablecoinValuation{}
		st.Heatmap = []model.HeatmapDay{}
		return nil
	})
}

// EnergyUsageForMeter returns the energy usage of the selected meter.
func (s *Store) EnergyUsageForMeter() []model.HourlyEnergyUsage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.state.HourlyEnergyUsage)
}

// StablecoinsForMeter returns the stablecoin valuations of the selected meter.
func (s *Store) StablecoinsForMeter() []model.StablecoinValuation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.state.Stablecoins)
}
