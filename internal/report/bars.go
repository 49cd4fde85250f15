package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/focuslock/internal/model"
)

const (
	barRune     = "█"
	minBarWidth = 1
)

// RenderBars draws one horizontal bar per point, scaled so the largest value
// fills the space left after the label and value columns.
func RenderBars(points []model.UsagePoint, width int) []string {
	if len(points) == 0 {
		return nil
	}
	labelWidth := 0
	maxValue := 0
	valueWidth := 0
	for _, p := range points {
		if w := runewidth.StringWidth(p.Day); w > labelWidth {
			labelWidth = w
		}
		if p.Minutes > maxValue {
			maxValue = p.Minutes
		}
		if w := len(formatMinutes(p.Minutes)); w > valueWidth {
			valueWidth = w
		}
	}
	barSpace := width - labelWidth - valueWidth - 2
	if barSpace < minBarWidth {
		barSpace = minBarWidth
	}

	lines := make([]string, 0, len(points))
	for _, p := range points {
		n := 0
		if maxValue > 0 && p.Minutes > 0 {
			n = p.Minutes * barSpace / maxValue
			if n < 1 {
				n = 1
			}
		}
		bar := strings.Repeat(barRune, n) + strings.Repeat(" ", barSpace-n)
		lines = append(lines, fmt.Sprintf("%s %s %s",
			runewidth.FillRight(p.Day, labelWidth),
			bar,
			runewidth.FillLeft(formatMinutes(p.Minutes), valueWidth),
		))
	}
	return lines
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%dm", m)
}
