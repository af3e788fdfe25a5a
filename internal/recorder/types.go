package recorder

import (
	"context"
	"time"

	"github.com/m3terscan/m3terscan-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockFetcher interface {
		Fetch(ctx context.Context) ([]model.Block, error)
	}
	BlockProcessor interface {
		Process(ctx context.Context, blocks []model.Block) error
	}
	Metrics interface {
		ObserveFetchBlocks(err error, started time.Time)
		ObserveProcessBatch(err error, blocks int, started time.Time)
		ObserveSyncMeter(err error)
	}
	// Source is the upstream API the recorder follows.
	Source interface {
		Blocks(ctx context.Context) ([]model.Block, error)
		EnergyUsage(ctx context.Context, blocks []model.Block, meterID string) ([]model.HourlyEnergyUsage, error)
		Stablecoins(ctx context.Context, blocks []model.Block, meterID string) (model.StablecoinSet, error)
	}
	Repository interface {
		MaxBlockNumber(ctx context.Context) (int, error)
		InsertBlocks(ctx context.Context, blocks []model.Block) error
		InsertEnergyUsage(ctx context.Context, rows []model.HourlyEnergyUsage) error
		InsertStablecoins(ctx context.Context, meterID string, coins []model.StablecoinValuation) error
	}
)
