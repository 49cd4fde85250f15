package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/focuslock/internal/model"
	"github.com/verte-zerg/focuslock/internal/report"
)

type palette struct {
	text    string
	muted   string
	border  string
	accent  string
	success string
	warning string
	danger  string
	info    string
}

var (
	darkPalette = palette{
		text:    "#F0F0F0",
		muted:   "#8C8C8C",
		border:  "#4A4A4A",
		accent:  "#A855F7",
		success: "#22C55E",
		warning: "#EAB308",
		danger:  "#EF4444",
		info:    "#3B82F6",
	}
	lightPalette = palette{
		text:    "#1F2937",
		muted:   "#6B7280",
		border:  "#D1D5DB",
		accent:  "#9333EA",
		success: "#16A34A",
		warning: "#CA8A04",
		danger:  "#DC2626",
		info:    "#2563EB",
	}
)

type styles struct {
	palette palette

	title     lipgloss.Style
	text      lipgloss.Style
	muted     lipgloss.Style
	accent    lipgloss.Style
	success   lipgloss.Style
	warning   lipgloss.Style
	danger    lipgloss.Style
	card      lipgloss.Style
	cardTitle lipgloss.Style
	cardValue lipgloss.Style
	selected  lipgloss.Style
	otpBox    lipgloss.Style
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return styles{
		palette:   p,
		title:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)).Bold(true),
		text:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)),
		muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)),
		success:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.success)),
		warning:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.warning)),
		danger:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.danger)),
		card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color(p.border)),
		cardTitle: lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		cardValue: lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)).Bold(true),
		selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.text)).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color(p.accent)),
		otpBox: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color(p.info)),
	}
}

func (s styles) unselected() lipgloss.Style {
	return s.selected.
		Bold(false).
		Foreground(lipgloss.Color(s.palette.muted)).
		BorderForeground(lipgloss.Color(s.palette.border))
}

func (s styles) noticeStyle(kind model.NoticeKind) lipgloss.Style {
	color := s.palette.info
	switch kind {
	case model.NoticeSuccess:
		color = s.palette.success
	case model.NoticeError:
		color = s.palette.danger
	case model.NoticeWarning:
		color = s.palette.warning
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(lipgloss.Color(color))
}

func (s styles) bandColor(band report.Band) string {
	switch band {
	case report.BandExceeded:
		return s.palette.danger
	case report.BandWarning:
		return s.palette.warning
	default:
		return s.palette.success
	}
}

func noticeIcon(kind model.NoticeKind) string {
	switch kind {
	case model.NoticeSuccess:
		return "✔"
	case model.NoticeError, model.NoticeWarning:
		return "!"
	default:
		return "✉"
	}
}
