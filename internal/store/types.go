package store

import (
	"context"
	"time"

	"github.com/m3terscan/m3terscan-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Source supplies block records and the views derived from them. Sources that
	// derive locally use blocks; remote sources ignore it.
	Source interface {
		Blocks(ctx context.Context) ([]model.Block, error)
		EnergyUsage(ctx context.Context, blocks []model.Block, meterID string) ([]model.HourlyEnergyUsage, error)
		Stablecoins(ctx context.Context, blocks []model.Block, meterID string) (model.StablecoinSet, error)
		Heatmap(ctx context.Context, blocks []model.Block, year int, meterID string) ([]model.HeatmapDay, error)
	}
	// Metrics records store activity.
	Metrics interface {
		ObserveFetch(resource Resource, source string, err error, started time.Time)
		ObserveStale(resource Resource, source string)
	}
	// Notifier is told about every state change that was applied.
	Notifier interface {
		Notify(ctx context.Context, resource Resource, state State)
	}
)

// Resource names one independently refreshed part of the store state.
type Resource string

var (
	ResourceBlocks      Resource = "blocks"
	ResourceEnergyUsage Resource = "energy_usage"
	ResourceStablecoins Resource = "stablecoins"
	ResourceHeatmap     Resource = "heatmap"
	ResourceSelection   Resource = "selection"
	ResourceSearch      Resource = "search"
	ResourceSettings    Resource = "settings"
)

const (
	sourceMock = "mock"
	sourceLive = "live"
)

type noopMetrics struct{}

func (noopMetrics) ObserveFetch(Resource, string, error, time.Time) {}
func (noopMetrics) ObserveStale(Resource, string)                   {}
