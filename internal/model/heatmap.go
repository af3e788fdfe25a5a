package model

// HeatmapViewMode selects how the calendar heatmap is laid out by clients.
type HeatmapViewMode string

var (
	HeatmapYearlyWeeks HeatmapViewMode = "yearly-weeks"
	HeatmapYearlyDays  HeatmapViewMode = "yearly-days"
	HeatmapMonthly     HeatmapViewMode = "monthly"
)

// Valid reports whether m is a known view mode.
func (m HeatmapViewMode) Valid() bool {
	switch m {
	case HeatmapYearlyWeeks, HeatmapYearlyDays, HeatmapMonthly:
		return true
	default:
		return false
	}
}

// HeatmapDay is the activity score of one calendar day, optionally scoped to a meter.
type HeatmapDay struct {
	Date    string `json:"date"`
	Value   int    `json:"value"`
	Month   int    `json:"month"`
	Day     int    `json:"day"`
	Weekday int    `json:"weekday"`
	Week    int    `json:"week"`
	MeterID string `json:"meterId"`
}

// HeatmapOfMeter filters days down to meterID.
func HeatmapOfMeter(days []HeatmapDay, meterID string) []HeatmapDay {
	out := make([]HeatmapDay, 0)
	for _, d := range days {
		if d.MeterID == meterID {
			out = append(out, d)
		}
	}
	return out
}
