// Package session owns the screen-time session record and every transition on it.
package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/focuslock/internal/model"
	"github.com/verte-zerg/focuslock/internal/otp"
)

// DefaultDailyLimit is the limit in minutes used when none is configured.
const DefaultDailyLimit = 120

// DefaultGuardianEmail prefills the login form.
const DefaultGuardianEmail = "guardian@example.com"

// DefaultTickInterval is the real time that stands for one simulated minute.
const DefaultTickInterval = 100 * time.Millisecond

// DefaultNoticeTTL is how long a notice stays visible.
const DefaultNoticeTTL = 5 * time.Second

const warningThresholdPct = 80

// OTPSource draws passcodes.
type OTPSource interface {
	Generate() string
}

// Option configures a Controller.
type Option func(*Controller)

// WithOTPSource replaces the default passcode generator.
func WithOTPSource(src OTPSource) Option {
	return func(c *Controller) {
		c.otp = src
	}
}

// WithLogger sets the logger used for transition records.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// Controller is the single owner of the session record. Every action is
// synchronous and total; callers serialize access.
type Controller struct {
	id        string
	state     model.State
	otp       OTPSource
	logger    *slog.Logger
	noticeSeq uint64
}

// New returns a controller on the welcome screen.
func New(cfg model.Config, opts ...Option) *Controller {
	limit := cfg.DailyLimit
	if limit < 0 {
		limit = 0
	}
	c := &Controller{
		id: uuid.NewString(),
		state: model.State{
			View:          model.ViewWelcome,
			GuardianEmail: cfg.GuardianEmail,
			DailyLimit:    limit,
			DarkMode:      cfg.DarkMode,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.otp == nil {
		c.otp = otp.New()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	c.logger = c.logger.With("session", c.id)
	return c
}

// ID returns the session id attached to log records.
func (c *Controller) ID() string {
	return c.id
}

// State returns a copy of the session record.
func (c *Controller) State() model.State {
	st := c.state
	if n := c.state.Notice; n != nil {
		cp := *n
		st.Notice = &cp
	}
	return st
}

// Accruing reports whether the accrual timer should be running.
func (c *Controller) Accruing() bool {
	return c.state.View == model.ViewDashboard && !c.state.Locked
}

// Percent returns elapsed usage as a percentage of the limit. A zero limit
// reports 100 once any time is used.
func (c *Controller) Percent() float64 {
	return UsagePercent(c.state.Elapsed, c.state.DailyLimit)
}

// UsagePercent computes elapsed/limit*100.
func UsagePercent(elapsed, limit int) float64 {
	if limit <= 0 {
		if elapsed > 0 {
			return 100
		}
		return 0
	}
	return float64(elapsed) / float64(limit) * 100
}

// SelectRole records the login path and opens its screen.
func (c *Controller) SelectRole(role model.Role) {
	c.state.Role = role
	switch role {
	case model.RoleStudent:
		c.state.View = model.ViewLogin
	case model.RoleGuardian:
		c.state.View = model.ViewGuardianPortal
	}
	c.logger.Debug("role selected", "role", role.String(), "view", c.state.View.String())
}

// SubmitLogin starts the student session. Missing name or email leaves the
// record untouched.
func (c *Controller) SubmitLogin(name, guardianEmail string, limit int) {
	if name == "" || guardianEmail == "" {
		return
	}
	if limit < 0 {
		limit = 0
	}
	c.state.UserName = name
	c.state.GuardianEmail = guardianEmail
	c.state.DailyLimit = limit
	c.state.View = model.ViewDashboard
	c.notify(model.NoticeSuccess, "Welcome to FocusLock!")
	c.logger.Info("student logged in", "user", name, "limit", limit)
}

// Tick accrues one minute. It returns false without touching the record when
// the session is not accruing.
func (c *Controller) Tick() bool {
	if !c.Accruing() {
		return false
	}
	c.state.Elapsed++
	limit := c.state.DailyLimit
	if limit > 0 {
		pct := UsagePercent(c.state.Elapsed, limit)
		if pct >= warningThresholdPct && pct < 100 && c.state.Notice == nil {
			c.notify(model.NoticeWarning, "Warning: 80% of daily limit reached!")
		}
	}
	if c.state.Elapsed >= limit {
		c.TriggerLock()
	}
	return true
}

// TriggerLock locks the device and issues a passcode.
func (c *Controller) TriggerLock() {
	c.state.Locked = true
	c.state.View = model.ViewLock
	c.RequestOTP()
	c.notify(model.NoticeError, "Screen time limit reached! Device locked.")
	c.logger.Info("device locked", "elapsed", c.state.Elapsed, "limit", c.state.DailyLimit)
}

// RequestOTP replaces any outstanding passcode with a fresh one.
func (c *Controller) RequestOTP() {
	code := c.otp.Generate()
	c.state.OTP = code
	c.state.OTPIssued = true
	c.notify(model.NoticeInfo, fmt.Sprintf("OTP sent to %s", c.state.GuardianEmail))
	c.logger.Info("otp issued", "to", c.state.GuardianEmail, "otp", code)
}

// GuardianRequestOTP issues a passcode from the guardian portal.
func (c *Controller) GuardianRequestOTP() {
	c.RequestOTP()
	c.notify(model.NoticeSuccess, "New OTP generated and sent!")
}

// SetOTPInput replaces the passcode entry buffer.
func (c *Controller) SetOTPInput(input string) {
	c.state.OTPInput = input
}

// SubmitOTP unlocks when input equals the outstanding passcode exactly.
func (c *Controller) SubmitOTP(input string) {
	if input != c.state.OTP {
		c.notify(model.NoticeError, "Invalid OTP. Please try again.")
		c.logger.Warn("otp rejected")
		return
	}
	c.state.Locked = false
	c.state.OTPIssued = false
	c.state.OTPInput = ""
	c.state.View = model.ViewDashboard
	c.notify(model.NoticeSuccess, "Device unlocked successfully!")
	c.logger.Info("device unlocked", "elapsed", c.state.Elapsed)
}

// ResetUsage clears accrued time and the lock. The view is left alone.
func (c *Controller) ResetUsage() {
	c.state.Elapsed = 0
	c.state.Locked = false
	c.notify(model.NoticeSuccess, "Screen time reset successfully!")
	c.logger.Info("usage reset")
}

// ToggleTheme flips between dark and light palettes.
func (c *Controller) ToggleTheme() {
	c.state.DarkMode = !c.state.DarkMode
}

// NavigateTo switches screens unconditionally.
func (c *Controller) NavigateTo(view model.View) {
	c.state.View = view
}

// Logout returns to the welcome screen and forgets the role.
func (c *Controller) Logout() {
	c.state.Role = model.RoleNone
	c.state.View = model.ViewWelcome
	c.logger.Debug("logged out")
}

// DismissNotice clears the current notice.
func (c *Controller) DismissNotice() {
	c.state.Notice = nil
}

// ExpireNotice clears the current notice only if it is the one identified by
// id. Expiries for superseded notices are ignored.
func (c *Controller) ExpireNotice(id uint64) bool {
	if c.state.Notice == nil || c.state.Notice.ID != id {
		return false
	}
	c.state.Notice = nil
	return true
}

func (c *Controller) notify(kind model.NoticeKind, text string) {
	c.noticeSeq++
	c.state.Notice = &model.Notice{ID: c.noticeSeq, Kind: kind, Text: text}
}
