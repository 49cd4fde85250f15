package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/focuslock/internal/model"
	"github.com/verte-zerg/focuslock/internal/report"
	"github.com/verte-zerg/focuslock/internal/session"
)

const chartWidth = 48

// View implements tea.Model.
func (m *Model) View() string {
	st := m.ctrl.State()
	s := newStyles(st.DarkMode)

	var body string
	switch st.View {
	case model.ViewWelcome:
		body = m.renderWelcome(s)
	case model.ViewLogin:
		body = m.renderLogin(s)
	case model.ViewDashboard:
		body = m.renderDashboard(s, st)
	case model.ViewLock:
		body = m.renderLock(s, st)
	case model.ViewGuardianPortal:
		body = m.renderGuardian(s, st)
	}
	if banner := renderNotice(s, st.Notice); banner != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, banner, "", body)
	}
	footer := s.muted.Render(m.help.ShortHelpView(m.helpBindings(st.View)))

	if m.width == 0 || m.height == 0 {
		return body + "\n\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	content := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, body)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return content + "\n" + footerLine
}

func (m *Model) helpBindings(view model.View) []key.Binding {
	switch view {
	case model.ViewWelcome:
		return m.keys.welcomeHelp()
	case model.ViewLogin:
		return m.keys.loginHelp()
	case model.ViewDashboard:
		return m.keys.dashboardHelp()
	case model.ViewLock:
		return m.keys.lockHelp()
	case model.ViewGuardianPortal:
		return m.keys.guardianHelp()
	default:
		return nil
	}
}

func renderNotice(s styles, n *model.Notice) string {
	if n == nil {
		return ""
	}
	return s.noticeStyle(n.Kind).Render(noticeIcon(n.Kind) + " " + n.Text)
}

func (m *Model) renderWelcome(s styles) string {
	options := []string{"Student Login", "Guardian Portal"}
	rendered := make([]string, len(options))
	for i, opt := range options {
		if i == m.welcomeIndex {
			rendered[i] = s.selected.Width(24).Render(opt)
		} else {
			rendered[i] = s.unselected().Width(24).Render(opt)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		s.title.Render("FocusLock"),
		s.muted.Render("Take control of your screen time"),
		"",
		lipgloss.JoinVertical(lipgloss.Left, rendered...),
	)
}

func (m *Model) renderLogin(s styles) string {
	lines := []string{s.title.Render("Student Login"), ""}
	for _, input := range m.loginInputs {
		lines = append(lines, input.View())
	}
	lines = append(lines, "", s.muted.Render("enter to start session"))
	return s.card.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderDashboard(s styles, st model.State) string {
	pct := m.ctrl.Percent()
	name := st.UserName
	if name == "" {
		name = "User"
	}
	theme := "☾"
	if !st.DarkMode {
		theme = "☀"
	}
	header := lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render("FocusLock")+"  "+s.muted.Render(theme),
		s.text.Bold(true).Render(fmt.Sprintf("Welcome back, %s!", name)),
		s.muted.Render("Track your screen time and stay focused"),
	)

	today := s.card.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.cardTitle.Render("Today"),
		s.cardValue.Render(fmt.Sprintf("%d min", st.Elapsed)),
		s.muted.Render(fmt.Sprintf("of %d min limit", st.DailyLimit)),
		m.renderBar(s, pct),
	))

	trendStyle := s.success
	if report.UsageBand(pct) != report.BandNormal {
		trendStyle = s.warning
	}
	weekly := s.card.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.cardTitle.Render("Weekly Avg"),
		s.cardValue.Render(fmt.Sprintf("%d min", report.WeeklyAverageMinutes)),
		trendStyle.Render(report.Trend(pct)),
	))

	status := s.card.Render(renderStatus(s, st.Locked))
	cards := lipgloss.JoinHorizontal(lipgloss.Top, today, " ", weekly, " ", status)

	chart := report.RenderBars(report.WeeklySeries(m.weekly, st.Elapsed), chartWidth)
	usage := s.card.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.text.Bold(true).Render("Weekly Usage"),
		s.accent.Render(strings.Join(chart, "\n")),
	))

	return lipgloss.JoinVertical(lipgloss.Left, header, "", cards, usage)
}

func renderStatus(s styles, locked bool) string {
	if locked {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.cardTitle.Render("Status"),
			s.danger.Bold(true).Render("Locked"),
			s.danger.Render("Device is locked"),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		s.cardTitle.Render("Status"),
		s.success.Bold(true).Render("Active"),
		s.success.Render("All systems operational"),
	)
}

func (m *Model) renderBar(s styles, pct float64) string {
	bar := m.bar
	bar.FullColor = s.bandColor(report.UsageBand(pct))
	bar.EmptyColor = s.palette.border
	fill := pct / 100
	if fill > 1 {
		fill = 1
	}
	return bar.ViewAs(fill)
}

func (m *Model) renderLock(s styles, st model.State) string {
	lines := []string{
		s.danger.Bold(true).Render("Device Locked"),
		s.muted.Render("You've reached your daily screen time limit"),
		"",
		fmt.Sprintf("%s %s", s.muted.Render("Time used today:"), s.cardValue.Render(fmt.Sprintf("%d min", st.Elapsed))),
		fmt.Sprintf("%s %s", s.muted.Render("Daily limit:    "), s.cardValue.Render(fmt.Sprintf("%d min", st.DailyLimit))),
		"",
	}
	if st.OTPIssued {
		lines = append(lines, s.otpBox.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.text.Bold(true).Render("OTP Sent"),
			s.muted.Render(fmt.Sprintf("Check %s for the unlock code", st.GuardianEmail)),
		)), "")
	}
	lines = append(lines,
		m.otpInput.View(),
		"",
		s.muted.Render(fmt.Sprintf("Testing OTP: %s", st.OTP)),
	)
	return s.card.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderGuardian(s styles, st model.State) string {
	pct := session.UsagePercent(st.Elapsed, st.DailyLimit)
	name := st.UserName
	if name == "" {
		name = "Student"
	}
	header := lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render("Guardian Portal"),
		s.text.Bold(true).Render("Welcome, Guardian"),
		s.muted.Render("Monitor and manage screen time for your child"),
	)

	statusWord := s.success.Render("Active")
	if st.Locked {
		statusWord = s.danger.Render("Locked")
	}
	child := s.card.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.text.Bold(true).Render("Child's Status"),
		fmt.Sprintf("%s %s", s.muted.Render("Name:         "), name),
		fmt.Sprintf("%s %d / %d min", s.muted.Render("Today's Usage:"), st.Elapsed, st.DailyLimit),
		fmt.Sprintf("%s %s", s.muted.Render("Status:       "), statusWord),
		m.renderBar(s, pct),
	))

	actionLines := []string{
		s.text.Bold(true).Render("Quick Actions"),
		s.accent.Render("[o] Generate New OTP"),
		s.accent.Render("[r] Reset Screen Time"),
	}
	if st.OTPIssued {
		actionLines = append(actionLines, s.otpBox.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.muted.Render("Current OTP"),
			s.cardValue.Render(st.OTP),
		)))
	}
	actions := s.card.Render(strings.Join(actionLines, "\n"))

	historyLines := []string{s.text.Bold(true).Render("Unlock History")}
	table := report.FormatHistory(m.history)
	for i, line := range table {
		switch {
		case i == 0:
			historyLines = append(historyLines, s.muted.Render(line))
		case m.history[i-1].Status == model.UnlockApproved:
			historyLines = append(historyLines, s.success.Render(line))
		default:
			historyLines = append(historyLines, s.danger.Render(line))
		}
	}
	history := s.card.Render(strings.Join(historyLines, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, child, " ", actions),
		history,
	)
}
