package report

import (
	"strings"
	"testing"

	"github.com/verte-zerg/focuslock/internal/model"
)

func TestFormatHistoryAligns(t *testing.T) {
	lines := FormatHistory([]model.UnlockRecord{
		{Time: "2:30 PM", Date: "Today", Status: model.UnlockApproved},
		{Time: "11:45 PM", Date: "2 days ago", Status: model.UnlockDenied},
	})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "    Time") {
		t.Fatalf("expected right-aligned header, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], " 2:30 PM  Today") {
		t.Fatalf("unexpected row: %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "Denied") {
		t.Fatalf("unexpected row: %q", lines[2])
	}
}

func TestFormatHistoryEmpty(t *testing.T) {
	lines := FormatHistory(nil)
	if len(lines) != 1 || lines[0] != "Time  Date  Status" {
		t.Fatalf("expected header only, got %q", lines)
	}
}
