// Package model defines the domain models shared by the meter data store and its sources.
package model

import "time"

// BlockStatus describes the validation outcome of a recorded block.
type BlockStatus string

var (
	// BlockSuccessful marks a block accepted by the rollup.
	BlockSuccessful BlockStatus = "Successful"
	// BlockInvalid marks a block rejected by the rollup.
	BlockInvalid BlockStatus = "Invalid"
)

const (
	// BlockDateLayout is the layout of Block.Date.
	BlockDateLayout = "02/01/2006"
	// BlockTimeLayout is the layout of Block.Time for blocks mapped from the API.
	BlockTimeLayout = "15:04"
)

// Block is one recorded meter submission.
type Block struct {
	Number    int         `json:"number"`
	Address   string      `json:"address"`
	Status    BlockStatus `json:"status"`
	Date      string      `json:"date"`
	Time      string      `json:"time"`
	Proposer  string      `json:"proposer"`
	MeterID   string      `json:"meterId"`
	CreatedAt time.Time   `json:"createdAt"`
}

// MeterIDs returns the distinct meter ids of blocks in first-seen order.
func MeterIDs(blocks []Block) []string {
	seen := make(map[string]struct{}, len(blocks))
	ids := make([]string, 0)
	for _, b := range blocks {
		if _, ok := seen[b.MeterID]; ok {
			continue
		}
		seen[b.MeterID] = struct{}{}
		ids = append(ids, b.MeterID)
	}
	return ids
}

// BlocksOfMeter returns the blocks recorded by meterID.
func BlocksOfMeter(blocks []Block, meterID string) []Block {
	out := make([]Block, 0)
	for _, b := range blocks {
		if b.MeterID == meterID {
			out = append(out, b)
		}
	}
	return out
}
