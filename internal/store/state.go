package store

import (
	"maps"
	"slices"

	"github.com/m3terscan/m3terscan-backend/internal/model"
)

// State is a point-in-time view of the store. Values returned by the store are deep
// copies and may be kept or modified by the caller.
type State struct {
	Blocks               []model.Block                          `json:"blockData"`
	FilteredBlocks       []model.Block                          `json:"filteredData"`
	HourlyEnergyUsage    []model.HourlyEnergyUsage              `json:"hourlyEnergyUsage"`
	Stablecoins          []model.StablecoinValuation            `json:"stablecoinData"`
	Heatmap              []model.HeatmapDay                     `json:"heatmapData"`
	AllHourlyEnergyUsage []model.HourlyEnergyUsage              `json:"allHourlyEnergyUsage"`
	AllStablecoins       []model.StablecoinValuation            `json:"allStablecoinData"`
	AllHeatmap           []model.HeatmapDay                     `json:"allHeatmapData"`
	AllMeterStablecoins  map[string][]model.StablecoinValuation `json:"allMeterStablecoins"`

	HeatmapViewMode model.HeatmapViewMode `json:"heatmapViewMode"`
	HeatmapYear     int                   `json:"heatmapSelectedYear"`
	HeatmapMonth    *int                  `json:"heatmapSelectedMonth"`

	SelectedMeterID string        `json:"selectedMeterId"`
	MeterBlocks     []model.Block `json:"meterIdBlocks"`

	Loading bool   `json:"isLoading"`
	Error   string `json:"error"`
	UseMock bool   `json:"useMockData"`

	// Revision grows with every applied change.
	Revision uint64 `json:"revision"`
}

func emptyState() State {
	return State{
		Blocks:               []model.Block{},
		FilteredBlocks:       []model.Block{},
		HourlyEnergyUsage:    []model.HourlyEnergyUsage{},
		Stablecoins:          []model.StablecoinValuation{},
		Heatmap:              []model.HeatmapDay{},
		AllHourlyEnergyUsage: []model.HourlyEnergyUsage{},
		AllStablecoins:       []model.StablecoinValuation{},
		AllHeatmap:           []model.HeatmapDay{},
		AllMeterStablecoins:  map[string][]model.StablecoinValuation{},
		MeterBlocks:          []model.Block{},
		HeatmapViewMode:      model.HeatmapYearlyWeeks,
	}
}

func (s State) clone() State {
	out := s
	out.Blocks = cloneSlice(s.Blocks)
	out.FilteredBlocks = cloneSlice(s.FilteredBlocks)
	out.HourlyEnergyUsage = cloneSlice(s.HourlyEnergyUsage)
	out.Stablecoins = cloneSlice(s.Stablecoins)
	out.Heatmap = cloneSlice(s.Heatmap)
	out.AllHourlyEnergyUsage = cloneSlice(s.AllHourlyEnergyUsage)
	out.AllStablecoins = cloneSlice(s.AllStablecoins)
	out.AllHeatmap = cloneSlice(s.AllHeatmap)
	out.MeterBlocks = cloneSlice(s.MeterBlocks)
	out.AllMeterStablecoins = cloneMeterStablecoins(s.AllMeterStablecoins)
	if s.HeatmapMonth != nil {
		month := *s.HeatmapMonth
		out.HeatmapMonth = &month
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}

func cloneMeterStablecoins(in map[string][]model.StablecoinValuation) map[string][]model.StablecoinValuation {
	out := make(map[string][]model.StablecoinValuation, len(in))
	for k, v := range maps.All(in) {
		out[k] = cloneSlice(v)
	}
	return out
}
