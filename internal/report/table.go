package report

import (
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/focuslock/internal/model"
)

const columnGap = "  "

// FormatHistory renders the unlock history as aligned text lines under a
// Time/Date/Status header. Times are right-aligned.
func FormatHistory(records []model.UnlockRecord) []string {
	rows := make([][3]string, 0, len(records)+1)
	rows = append(rows, [3]string{"Time", "Date", "Status"})
	for _, r := range records {
		rows = append(rows, [3]string{r.Time, r.Date, string(r.Status)})
	}

	var widths [3]int
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		line := runewidth.FillLeft(row[0], widths[0]) + columnGap +
			runewidth.FillRight(row[1], widths[1]) + columnGap +
			row[2]
		lines = append(lines, line)
	}
	return lines
}
