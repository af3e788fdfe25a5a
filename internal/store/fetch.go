package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m3terscan/m3terscan-backend/internal/model"
	"golang.org/x/sync/errgroup"
)

// FetchBlockData replaces the block list with the one of the active source.
func (s *Store) FetchBlockData(ctx context.Context) error {
	t, err := s.issue(ResourceBlocks)
	if err != nil {
		return err
	}
	ctx, done := s.bind(ctx)
	defer done()

	started := time.Now()
	blocks, err := t.source.Blocks(ctx)
	if err != nil {
		err = fmt.Errorf("fetch block data: %w", err)
	}
	return s.settle(ctx, t, started, err, func(st *State) {
		st.Blocks = blocks
		if st.SelectedMeterID != "" {
			st.MeterBlocks = model.BlocksOfMeter(blocks, st.SelectedMeterID)
		}
	})
}

// FetchEnergyUsageData reloads hourly energy usage of all meters. The current view is
// narrowed to meterID, or to the selected meter when meterID is empty.
func (s *Store) FetchEnergyUsageData(ctx context.Context, meterID string) error {
	t, err := s.issue(ResourceEnergyUsage)
	if err != nil {
		return err
	}
	ctx, done := s.bind(ctx)
	defer done()

	started := time.Now()
	rows, err := t.source.EnergyUsage(ctx, t.blocks, t.target(meterID))
	if err != nil {
		err = fmt.Errorf("fetch energy usage data: %w", err)
	}
	return s.settle(ctx, t, started, err, func(st *State) {
		st.AllHourlyEnergyUsage = rows
		st.HourlyEnergyUsage = []model.HourlyEnergyUsage{}
		if target := t.target(meterID); target != "" {
			st.HourlyEnergyUsage = model.EnergyUsageOfMeter(rows, target)
		}
	})
}

// FetchStablecoinData reloads the reference and per-meter stablecoin valuations.
func (s *Store) FetchStablecoinData(ctx context.Context, meterID string) error {
	t, err := s.issue(ResourceStablecoins)
	if err != nil {
		return err
	}
	ctx, done := s.bind(ctx)
	defer done()

	started := time.Now()
	set, err := t.source.Stablecoins(ctx, t.blocks, t.target(meterID))
	if err != nil {
		err = fmt.Errorf("fetch stablecoin data: %w", err)
	}
	return s.settle(ctx, t, started, err, func(st *State) {
		st.AllStablecoins = cloneSlice(set.Global)
		st.AllMeterStablecoins = cloneMeterStablecoins(set.PerMeter)
		st.Stablecoins = []model.StablecoinValuation{}
		if target := t.target(meterID); target != "" {
			st.Stablecoins = cloneSlice(set.PerMeter[target])
		}
	})
}

// FetchHeatmapData reloads the heatmap of the selected year, scoped to meterID or to the
// selected meter.
func (s *Store) FetchHeatmapData(ctx context.Context, meterID string) error {
	t, err := s.issue(ResourceHeatmap)
	if err != nil {
		return err
	}
	return s.loadHeatmap(ctx, t, t.year, t.target(meterID), false)
}

// GenerateHeatmapData rebuilds the heatmap of year, scoped to meterID only.
func (s *Store) GenerateHeatmapData(ctx context.Context, year int, meterID string) error {
	if year <= 0 {
		return ErrInvalidYear
	}
	t, err := s.issue(ResourceHeatmap)
	if err != nil {
		return err
	}
	return s.loadHeatmap(ctx, t, year, meterID, true)
}

// loadHeatmap fills AllHeatmap with the unscoped year and Heatmap with the meterID view.
// With regenerate the mock view is rebuilt from the meter's own blocks, placeholders
// included; otherwise it is the unscoped year filtered by meterID. A live source answers
// one scoped request that serves as both.
func (s *Store) loadHeatmap(ctx context.Context, t ticket, year int, meterID string, regenerate bool) error {
	ctx, done := s.bind(ctx)
	defer done()

	started := time.Now()
	var all, current []model.HeatmapDay
	var err error
	if t.sourceName == sourceMock {
		all, err = t.source.Heatmap(ctx, t.blocks, year, "")
		current = all
		switch {
		case err != nil || meterID == "":
		case regenerate:
			current, err = t.source.Heatmap(ctx, t.blocks, year, meterID)
			current = model.HeatmapOfMeter(current, meterID)
		default:
			current = model.HeatmapOfMeter(all, meterID)
		}
	} else {
		all, err = t.source.Heatmap(ctx, t.blocks, year, meterID)
		current = all
		if meterID != "" {
			current = model.HeatmapOfMeter(all, meterID)
		}
	}
	if err != nil {
		err = fmt.Errorf("fetch heatmap data: %w", err)
	}
	return s.settle(ctx, t, started, err, func(st *State) {
		st.AllHeatmap = all
		st.Heatmap = current
	})
}

// Refresh reloads blocks and then, concurrently, every derived view scoped to the
// current selection.
func (s *Store) Refresh(ctx context.Context) error {
	blocksErr := s.FetchBlockData(ctx)
	if errors.Is(blocksErr, ErrClosed) {
		return blocksErr
	}

	selected := s.Snapshot().SelectedMeterID
	var g errgroup.Group
	g.Go(func() error { return s.FetchEnergyUsageData(ctx, selected) })
	g.Go(func() error { return s.FetchStablecoinData(ctx, selected) })
	g.Go(func() error { return s.FetchHeatmapData(ctx, selected) })
	return errors.Join(blocksErr, g.Wait())
}

// SetMockMode switches between the mock and the live source and refreshes everything.
func (s *Store) SetMockMode(ctx context.Context, useMock bool) error {
	err := s.update(ctx, ResourceSettings, func(st *State) error {
		if !useMock && s.live == nil {
			return ErrNoLiveSource
		}
		st.UseMock = useMock
		return nil
	})
	if err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (t ticket) target(meterID string) string {
	if meterID != "" {
		return meterID
	}
	return t.selected
}
