package recorder

import (
	"context"
	"fmt"
	"sort"

	"github.com/m3terscan/m3terscan-backend/internal/model"
)

// newBlockFetcher selects the upstream blocks that are not stored yet, oldest first.
type newBlockFetcher struct {
	source Source
	repo   Repository
}

func (f *newBlockFetcher) Fetch(ctx context.Context) ([]model.Block, error) {
	stored, err := f.repo.MaxBlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("max stored block number: %w", err)
	}

	blocks, err := f.source.Blocks(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch upstream blocks: %w", err)
	}

	fresh := make([]model.Block, 0, len(blocks))
	for _, b := range blocks {
		if b.Number > stored {
			fresh = append(fresh, b)
		}
	}
	sort.Slice(fresh, func(i, j int) bool { return fresh[i].Number < fresh[j].Number })
	return fresh, nil
}
