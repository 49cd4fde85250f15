// Package tui provides the Bubble Tea screen-time interface.
package tui

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/focuslock/internal/model"
	"github.com/verte-zerg/focuslock/internal/otp"
	"github.com/verte-zerg/focuslock/internal/session"
	"github.com/verte-zerg/focuslock/internal/store"
)

const progressWidth = 28

const (
	fieldName = iota
	fieldEmail
	fieldLimit
)

const (
	welcomeStudent = iota
	welcomeGuardian
)

type accrualTickMsg struct {
	token int
}

type noticeExpiredMsg struct {
	id uint64
}

// Model implements the Bubble Tea session UI. It forwards every intent to the
// session controller and owns the accrual timer and notice expiry scheduling.
type Model struct {
	ctrl   *session.Controller
	store  *store.Store
	cfg    model.Config
	logger *slog.Logger
	keys   keyMap
	help   help.Model

	timer           session.AccrualTimer
	scheduledNotice uint64
	lastView        model.View

	weekly  []model.UsagePoint
	history []model.UnlockRecord

	welcomeIndex int
	loginInputs  []textinput.Model
	loginFocus   int
	otpInput     textinput.Model
	bar          progress.Model

	width  int
	height int
}

// NewModel constructs the session UI. st may be nil, in which case the
// weekly chart and unlock history are empty.
func NewModel(ctrl *session.Controller, st *store.Store, cfg model.Config, logger *slog.Logger) *Model {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = session.DefaultTickInterval
	}
	if cfg.NoticeTTL <= 0 {
		cfg.NoticeTTL = session.DefaultNoticeTTL
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Model{
		ctrl:     ctrl,
		store:    st,
		cfg:      cfg,
		logger:   logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		lastView: ctrl.State().View,
		bar: progress.New(
			progress.WithSolidFill(darkPalette.success),
			progress.WithoutPercentage(),
			progress.WithWidth(progressWidth),
		),
	}
	m.initInputs()
	m.loadFixtures()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.sync()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case accrualTickMsg:
		cmd = m.handleAccrualTick(msg)
	case noticeExpiredMsg:
		m.ctrl.ExpireNotice(msg.id)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			m.ctrl.ToggleTheme()
		case key.Matches(msg, m.keys.Dismiss):
			m.ctrl.DismissNotice()
		default:
			var quit bool
			cmd, quit = m.handleKey(msg)
			if quit {
				m.Close()
				return m, tea.Quit
			}
		}
	default:
		cmd = m.updateFocusedInput(msg)
	}
	return m, tea.Batch(cmd, m.sync())
}

// Close cancels the accrual timer. Ticks already in flight are ignored.
func (m *Model) Close() {
	m.timer.Stop()
}

func (m *Model) initInputs() {
	st := m.ctrl.State()
	name := newInput("Name: ", "Your Name", 0)
	name.SetValue(st.UserName)
	email := newInput("Guardian: ", "Guardian's Email", 0)
	email.SetValue(st.GuardianEmail)
	limit := newInput("Limit: ", "Daily Limit (minutes)", 5)
	limit.SetValue(strconv.Itoa(st.DailyLimit))
	m.loginInputs = []textinput.Model{name, email, limit}
	m.otpInput = newInput("OTP: ", "Enter OTP", otp.Length)
}

func newInput(prompt, placeholder string, limit int) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = placeholder
	input.CharLimit = limit
	input.Width = 32
	return input
}

func (m *Model) loadFixtures() {
	if m.store == nil {
		return
	}
	ctx := context.Background()
	weekly, err := m.store.WeeklyUsage(ctx)
	if err != nil {
		m.logger.Error("failed to load weekly usage", "err", err)
	} else {
		m.weekly = weekly
	}
	history, err := m.store.UnlockHistory(ctx)
	if err != nil {
		m.logger.Error("failed to load unlock history", "err", err)
	} else {
		m.history = history
	}
}

// sync reconciles the timer, notice expiry and input focus with the
// controller state after every update.
func (m *Model) sync() tea.Cmd {
	var cmds []tea.Cmd
	st := m.ctrl.State()
	if st.View != m.lastView {
		m.lastView = st.View
		cmds = append(cmds, m.enterView(st.View))
	}

	if m.ctrl.Accruing() {
		if token, ok := m.timer.Start(); ok {
			m.logger.Debug("accrual timer started", "token", token)
			cmds = append(cmds, m.scheduleTick(token))
		}
	} else if m.timer.Running() {
		m.timer.Stop()
		m.logger.Debug("accrual timer stopped")
	}

	if n := st.Notice; n != nil && n.ID != m.scheduledNotice {
		m.scheduledNotice = n.ID
		cmds = append(cmds, expireNotice(n.ID, m.cfg.NoticeTTL))
	}
	return tea.Batch(cmds...)
}

func (m *Model) scheduleTick(token int) tea.Cmd {
	return tea.Tick(m.cfg.TickInterval, func(time.Time) tea.Msg {
		return accrualTickMsg{token: token}
	})
}

func expireNotice(id uint64, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

func (m *Model) handleAccrualTick(msg accrualTickMsg) tea.Cmd {
	if !m.timer.Owns(msg.token) {
		return nil
	}
	m.ctrl.Tick()
	if !m.ctrl.Accruing() {
		m.timer.Stop()
		return nil
	}
	return m.scheduleTick(msg.token)
}

func (m *Model) enterView(view model.View) tea.Cmd {
	for i := range m.loginInputs {
		m.loginInputs[i].Blur()
	}
	m.otpInput.Blur()
	st := m.ctrl.State()
	switch view {
	case model.ViewLogin:
		m.loginFocus = fieldName
		m.loginInputs[fieldEmail].SetValue(st.GuardianEmail)
		m.loginInputs[fieldLimit].SetValue(strconv.Itoa(st.DailyLimit))
		return m.loginInputs[fieldName].Focus()
	case model.ViewLock:
		m.otpInput.SetValue(st.OTPInput)
		m.otpInput.CursorEnd()
		return m.otpInput.Focus()
	default:
		return nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch m.ctrl.State().View {
	case model.ViewWelcome:
		return nil, m.handleWelcomeKey(msg)
	case model.ViewLogin:
		return m.handleLoginKey(msg), false
	case model.ViewDashboard:
		return nil, m.handleDashboardKey(msg)
	case model.ViewLock:
		return m.handleLockKey(msg), false
	case model.ViewGuardianPortal:
		return nil, m.handleGuardianKey(msg)
	default:
		return nil, false
	}
}

func (m *Model) handleWelcomeKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Exit):
		return true
	case key.Matches(msg, m.keys.Up):
		m.welcomeIndex = welcomeStudent
	case key.Matches(msg, m.keys.Down):
		m.welcomeIndex = welcomeGuardian
	case key.Matches(msg, m.keys.Student):
		m.ctrl.SelectRole(model.RoleStudent)
	case key.Matches(msg, m.keys.Guardian):
		m.ctrl.SelectRole(model.RoleGuardian)
	case key.Matches(msg, m.keys.Select):
		if m.welcomeIndex == welcomeGuardian {
			m.ctrl.SelectRole(model.RoleGuardian)
		} else {
			m.ctrl.SelectRole(model.RoleStudent)
		}
	}
	return false
}

func (m *Model) handleLoginKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.ctrl.NavigateTo(model.ViewWelcome)
		return nil
	case key.Matches(msg, m.keys.NextField):
		return m.focusLoginField((m.loginFocus + 1) % len(m.loginInputs))
	case key.Matches(msg, m.keys.PrevField):
		return m.focusLoginField((m.loginFocus + len(m.loginInputs) - 1) % len(m.loginInputs))
	case key.Matches(msg, m.keys.Submit):
		m.submitLogin()
		return nil
	}
	if m.loginFocus == fieldLimit && !digitsOnly(msg) {
		return nil
	}
	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return cmd
}

func (m *Model) focusLoginField(index int) tea.Cmd {
	m.loginInputs[m.loginFocus].Blur()
	m.loginFocus = index
	return m.loginInputs[index].Focus()
}

func (m *Model) submitLogin() {
	name := strings.TrimSpace(m.loginInputs[fieldName].Value())
	email := strings.TrimSpace(m.loginInputs[fieldEmail].Value())
	limit := m.ctrl.State().DailyLimit
	if raw := strings.TrimSpace(m.loginInputs[fieldLimit].Value()); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	m.ctrl.SubmitLogin(name, email, limit)
}

func (m *Model) handleDashboardKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Exit):
		return true
	case key.Matches(msg, m.keys.ThemeShort):
		m.ctrl.ToggleTheme()
	case key.Matches(msg, m.keys.Logout):
		m.ctrl.Logout()
	}
	return false
}

func (m *Model) handleLockKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Unlock):
		if input := m.otpInput.Value(); otp.Valid(input) {
			m.ctrl.SubmitOTP(input)
			m.otpInput.SetValue(m.ctrl.State().OTPInput)
		}
		return nil
	case key.Matches(msg, m.keys.Resend):
		m.ctrl.RequestOTP()
		return nil
	}
	if !digitsOnly(msg) {
		return nil
	}
	var cmd tea.Cmd
	m.otpInput, cmd = m.otpInput.Update(msg)
	m.ctrl.SetOTPInput(m.otpInput.Value())
	return cmd
}

func (m *Model) handleGuardianKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Exit):
		return true
	case key.Matches(msg, m.keys.NewOTP):
		m.ctrl.GuardianRequestOTP()
	case key.Matches(msg, m.keys.ResetUsage):
		m.ctrl.ResetUsage()
	case key.Matches(msg, m.keys.ThemeShort):
		m.ctrl.ToggleTheme()
	case key.Matches(msg, m.keys.Leave):
		m.ctrl.Logout()
	}
	return false
}

// updateFocusedInput forwards non-key messages such as cursor blinks.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.ctrl.State().View {
	case model.ViewLogin:
		m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	case model.ViewLock:
		m.otpInput, cmd = m.otpInput.Update(msg)
	}
	return cmd
}

// digitsOnly rejects typed or pasted runes that are not ASCII digits. Editing
// keys pass through.
func digitsOnly(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeySpace {
		return false
	}
	if msg.Type != tea.KeyRunes {
		return true
	}
	for _, r := range msg.Runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
