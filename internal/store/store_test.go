package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/focuslock/internal/model"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	st, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestWeeklyUsageFixture(t *testing.T) {
	st := openMemory(t)
	points, err := st.WeeklyUsage(context.Background())
	if err != nil {
		t.Fatalf("weekly usage: %v", err)
	}
	want := []model.UsagePoint{
		{Day: "Mon", Minutes: 95},
		{Day: "Tue", Minutes: 142},
		{Day: "Wed", Minutes: 88},
		{Day: "Thu", Minutes: 135},
		{Day: "Fri", Minutes: 156},
		{Day: "Sat", Minutes: 180},
	}
	if len(points) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(points))
	}
	for i := range want {
		if points[i] != want[i] {
			t.Fatalf("point %d: got %+v want %+v", i, points[i], want[i])
		}
	}
}

func TestUnlockHistoryFixture(t *testing.T) {
	st := openMemory(t)
	records, err := st.UnlockHistory(context.Background())
	if err != nil {
		t.Fatalf("unlock history: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].Date != "Today" || records[0].Status != model.UnlockApproved {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[2].Status != model.UnlockDenied {
		t.Fatalf("unexpected last record: %+v", records[2])
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focuslock.db")
	for i := 0; i < 2; i++ {
		st, err := Open(path)
		if err != nil {
			t.Fatalf("open %d: %v", i, err)
		}
		points, err := st.WeeklyUsage(context.Background())
		if err != nil {
			t.Fatalf("weekly usage: %v", err)
		}
		if len(points) != 6 {
			t.Fatalf("open %d: expected 6 points, got %d", i, len(points))
		}
		if err := st.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}
}
