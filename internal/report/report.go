// Package report prepares usage figures and text renderings for display.
package report

import "github.com/verte-zerg/focuslock/internal/model"

// WeeklyAverageMinutes is the simulated weekly average shown on the dashboard.
const WeeklyAverageMinutes = 128

// TodayLabel labels the live entry of the weekly series.
const TodayLabel = "Sun"

// Band classifies usage against the limit.
type Band int

const (
	BandNormal Band = iota
	BandWarning
	BandExceeded
)

// UsageBand returns the band for a usage percentage.
func UsageBand(pct float64) Band {
	switch {
	case pct >= 100:
		return BandExceeded
	case pct >= 80:
		return BandWarning
	default:
		return BandNormal
	}
}

// Trend returns the simulated week-over-week comparison line.
func Trend(pct float64) string {
	if pct >= 80 {
		return "↑ 12% from last week"
	}
	return "↓ 8% from last week"
}

// WeeklySeries appends today's live minutes to the recorded days.
func WeeklySeries(past []model.UsagePoint, today int) []model.UsagePoint {
	series := make([]model.UsagePoint, 0, len(past)+1)
	series = append(series, past...)
	return append(series, model.UsagePoint{Day: TodayLabel, Minutes: today})
}
