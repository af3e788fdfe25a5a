package store

import (
	"context"

	"github.com/m3terscan/m3terscan-backend/internal/model"
)

// SetHeatmapYear selects year and regenerates the heatmap for the selected meter.
func (s *Store) SetHeatmapYear(ctx context.Context, year int) error {
	if year <= 0 {
		return ErrInvalidYear
	}
	var meterID string
	err := s.update(ctx, ResourceSettings, func(st *State) error {
		st.HeatmapYear = year
		meterID = st.SelectedMeterID
		return nil
	})
	if err != nil {
		return err
	}
	return s.GenerateHeatmapData(ctx, year, meterID)
}

// SetHeatmapMonth selects a month (0-11) and switches to the monthly view; nil clears it.
func (s *Store) SetHeatmapMonth(ctx context.Context, month *int) error {
	if month != nil && (*month < 0 || *month > 11) {
		return ErrInvalidMonth
	}
	return s.update(ctx, ResourceSettings, func(st *State) error {
		if month == nil {
			st.HeatmapMonth = nil
			return nil
		}
		m := *month
		st.HeatmapMonth = &m
		st.HeatmapViewMode = model.HeatmapMonthly
		return nil
	})
}

// SetHeatmapViewMode switches the heatmap layout. Leaving the monthly view clears the month.
func (s *Store) SetHeatmapViewMode(ctx context.Context, mode model.HeatmapViewMode) error {
	if !mode.Valid() {
		return ErrInvalidViewMode
	}
	return s.update(ctx, ResourceSettings, func(st *State) error {
		st.HeatmapViewMode = mode
		if mode != model.HeatmapMonthly {
			st.HeatmapMonth = nil
		}
		return nil
	})
}

// ClearError resets the recorded error.
func (s *Store) ClearError(ctx context.Context) error {
	return s.update(ctx, ResourceSettings, func(st *State) error {
		st.Error = ""
		return nil
	})
}
