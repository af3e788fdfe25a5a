package meter

import (
	"time"

	"github.com/m3terscan/m3terscan-backend/internal/model"
)

const (
	heatmapDateLayout = "2006-01-02"

	scorePerBlock = 30
	maxScore      = 100
)

// DayBlocks maps a "YYYY-MM-DD" date to the meter id of every block recorded that day.
type DayBlocks map[string][]string

// ActivityScore converts the number of blocks recorded on a day to a 0..100 score.
func ActivityScore(blocks int) int {
	if blocks <= 0 {
		return 0
	}
	return min(blocks*scorePerBlock, maxScore)
}

// IndexBlocks groups blocks by calendar day, skipping blocks whose date does not parse.
// When meterID is set only that meter's blocks are indexed.
func IndexBlocks(blocks []model.Block, meterID string) DayBlocks {
	index := make(DayBlocks)
	for _, b := range blocks {
		if meterID != "" && b.MeterID != meterID {
			continue
		}
		day, err := time.Parse(model.BlockDateLayout, b.Date)
		if err != nil {
			continue
		}
		key := day.Format(heatmapDateLayout)
		index[key] = append(index[key], b.MeterID)
	}
	return index
}

// HeatmapByYear builds the calendar heatmap of year from block records.
func HeatmapByYear(blocks []model.Block, year int, meterID string) []model.HeatmapDay {
	return HeatmapFromCounts(year, meterID, IndexBlocks(blocks, meterID))
}

// HeatmapFromCounts walks every day of year. A day with blocks yields one entry per block,
// all carrying the day's score; an empty day yields a single zero placeholder for meterID.
func HeatmapFromCounts(year int, meterID string, index DayBlocks) []model.HeatmapDay {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	days := make([]model.HeatmapDay, 0, 366)

	for d := start; d.Year() == year; d = d.AddDate(0, 0, 1) {
		meters := index[d.Format(heatmapDateLayout)]
		if len(meters) == 0 {
			days = append(days, heatmapDay(d, 0, meterID))
			continue
		}
		score := ActivityScore(len(meters))
		for _, m := range meters {
			days = append(days, heatmapDay(d, score, m))
		}
	}
	return days
}

// RecentHeatmap covers the last `days` days ending at now, newest first. Placeholders for
// empty days are only emitted in the all-meters view.
func RecentHeatmap(blocks []model.Block, now time.Time, days int, meterID string) []model.HeatmapDay {
	index := IndexBlocks(blocks, meterID)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	out := make([]model.HeatmapDay, 0, days)

	for i := 0; i < days; i++ {
		d := today.AddDate(0, 0, -i)
		meters := index[d.Format(heatmapDateLayout)]
		if len(meters) == 0 {
			if meterID == "" {
				out = append(out, heatmapDay(d, 0, ""))
			}
			continue
		}
		score := ActivityScore(len(meters))
		for _, m := range meters {
			out = append(out, heatmapDay(d, score, m))
		}
	}
	return out
}

// MonthDays returns the entries of month (0-11).
func MonthDays(days []model.HeatmapDay, month int) []model.HeatmapDay {
	out := make([]model.HeatmapDay, 0)
	for _, d := range days {
		if d.Month == month {
			out = append(out, d)
		}
	}
	return out
}

// WeekAverage averages the non-zero scores of one week (1-5) of month.
func WeekAverage(days []model.HeatmapDay, month, week int) float64 {
	var sum, n int
	for _, d := range days {
		if d.Month == month && d.Week == week && d.Value > 0 {
			sum += d.Value
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func heatmapDay(d time.Time, value int, meterID string) model.HeatmapDay {
	return model.HeatmapDay{
		Date:    d.Format(heatmapDateLayout),
		Value:   max(0, min(value, maxScore)),
		Month:   int(d.Month()) - 1,
		Day:     d.Day(),
		Weekday: int(d.Weekday()),
		Week:    (d.Day() + 6) / 7,
		MeterID: meterID,
	}
}
