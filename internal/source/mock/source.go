// Package mock generates meter data locally from the seed block list.
package mock

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/m3terscan/m3terscan-backend/internal/meter"
	"github.com/m3terscan/m3terscan-backend/internal/model"
)

// Option customizes a Source.
type Option func(*Source)

// WithRand replaces the random source. It is guarded by the Source, so it does not have
// to be safe for concurrent use.
func WithRand(rnd meter.Rand) Option {
	return func(s *Source) {
		if rnd != nil {
			s.rnd = rnd
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Source) {
		if now != nil {
			s.now = now
		}
	}
}

// Source serves the seed blocks and synthesizes the derived views from whatever blocks it
// is handed. Generation never fails.
type Source struct {
	mu  sync.Mutex
	rnd meter.Rand
	now func() time.Time
}

func New(opts ...Option) *Source {
	s := &Source{
		rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Blocks returns a fresh copy of the seed blocks.
func (s *Source) Blocks(context.Context) ([]model.Block, error) {
	return model.SeedBlocks(), nil
}

// EnergyUsage generates 24 hourly rows for every meter in blocks. Filtering by meterID is
// left to the caller.
func (s *Source) EnergyUsage(_ context.Context, blocks []model.Block, _ string) ([]model.HourlyEnergyUsage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return meter.HourlyEnergyUsage(blocks, s.rnd), nil
}

// Stablecoins returns the reference valuations plus a generated set for every meter.
func (s *Source) Stablecoins(_ context.Context, blocks []model.Block, _ string) (model.StablecoinSet, error) {
	reference := model.ReferenceStablecoins()

	s.mu.Lock()
	defer s.mu.Unlock()
	return model.StablecoinSet{
		Global:   reference,
		PerMeter: meter.MeterStablecoins(blocks, reference, s.rnd),
	}, nil
}

// Heatmap builds the calendar heatmap of year, the current year when year is zero.
func (s *Source) Heatmap(_ context.Context, blocks []model.Block, year int, meterID string) ([]model.HeatmapDay, error) {
	if year <= 0 {
		year = s.now().Year()
	}
	return meter.HeatmapByYear(blocks, year, meterID), nil
}
