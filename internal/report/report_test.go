package report

import (
	"testing"

	"github.com/verte-zerg/focuslock/internal/model"
)

func TestUsageBand(t *testing.T) {
	cases := []struct {
		pct  float64
		want Band
	}{
		{0, BandNormal},
		{79.9, BandNormal},
		{80, BandWarning},
		{99.9, BandWarning},
		{100, BandExceeded},
		{140, BandExceeded},
	}
	for _, tc := range cases {
		if got := UsageBand(tc.pct); got != tc.want {
			t.Fatalf("UsageBand(%v) = %v, want %v", tc.pct, got, tc.want)
		}
	}
}

func TestTrend(t *testing.T) {
	if got := Trend(50); got != "↓ 8% from last week" {
		t.Fatalf("unexpected trend: %q", got)
	}
	if got := Trend(80); got != "↑ 12% from last week" {
		t.Fatalf("unexpected trend: %q", got)
	}
}

func TestWeeklySeriesAppendsToday(t *testing.T) {
	past := []model.UsagePoint{{Day: "Mon", Minutes: 95}, {Day: "Tue", Minutes: 142}}
	series := WeeklySeries(past, 42)
	if len(series) != 3 {
		t.Fatalf("expected 3 points, got %d", len(series))
	}
	if series[2] != (model.UsagePoint{Day: TodayLabel, Minutes: 42}) {
		t.Fatalf("unexpected today point: %+v", series[2])
	}
	if len(past) != 2 {
		t.Fatalf("input slice must not grow")
	}
}
