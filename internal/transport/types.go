package transport

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/m3terscan/m3terscan-backend/internal/model"
	"github.com/m3terscan/m3terscan-backend/internal/store"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// MeterStore is the part of *store.Store served over HTTP.
	MeterStore interface {
		Snapshot() store.State
		FetchBlockData(ctx context.Context) error
		FetchEnergyUsageData(ctx context.Context, meterID string) error
		FetchStablecoinData(ctx context.Context, meterID string) error
		FetchHeatmapData(ctx context.Context, meterID string) error
		GenerateHeatmapData(ctx context.Context, year int, meterID string) error
		SetHeatmapYear(ctx context.Context, year int) error
		SetHeatmapMonth(ctx context.Context, month *int) error
		SetHeatmapViewMode(ctx context.Context, mode model.HeatmapViewMode) error
		SelectMeterID(ctx context.Context, meterID string) error
		ClearSelectedMeterID(ctx context.Context) error
		SearchBlocks(ctx context.Context, query string) error
		SearchProposer(ctx context.Context, query string) error
		SearchBlockNumber(ctx context.Context, query string) error
		ClearSearch(ctx context.Context) error
		SetMockMode(ctx context.Context, useMock bool) error
		ClearError(ctx context.Context) error
	}
	Analytics interface {
		QueryResults(ctx context.Context) (json.RawMessage, error)
	}
	Rollup interface {
		ChainLength(ctx context.Context) (*big.Int, error)
	}
)
