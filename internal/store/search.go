package store

import (
	"context"
	"strconv"
	"strings"

	"github.com/m3terscan/m3terscan-backend/internal/model"
)

// SearchBlocks keeps the blocks whose proposer or number contains query.
func (s *Store) SearchBlocks(ctx context.Context, query string) error {
	q := normalizeQuery(query)
	return s.search(ctx, q, func(b model.Block) bool {
		return proposerMatches(b, q) || numberMatches(b, q)
	})
}

// SearchProposer keeps the blocks whose proposer contains query, ignoring case.
func (s *Store) SearchProposer(ctx context.Context, query string) error {
	q := normalizeQuery(query)
	return s.search(ctx, q, func(b model.Block) bool {
		return proposerMatches(b, q)
	})
}

// SearchBlockNumber keeps the blocks whose number contains query.
func (s *Store) SearchBlockNumber(ctx context.Context, query string) error {
	q := normalizeQuery(query)
	return s.search(ctx, q, func(b model.Block) bool {
		return numberMatches(b, q)
	})
}

// ClearSearch empties the search results.
func (s *Store) ClearSearch(ctx context.Context) error {
	return s.search(ctx, "", nil)
}

func (s *Store) search(ctx context.Context, query string, match func(model.Block) bool) error {
	return s.update(ctx, ResourceSearch, func(st *State) error {
		results := make([]model.Block, 0)
		if query != "" {
			for _, b := range st.Blocks {
				if match(b) {
					results = append(results, b)
				}
			}
		}
		st.FilteredBlocks = results
		return nil
	})
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func proposerMatches(b model.Block, q string) bool {
	return strings.Contains(strings.ToLower(b.Proposer), q)
}

func numberMatches(b model.Block, q string) bool {
	return strings.Contains(strconv.Itoa(b.Number), q)
}
