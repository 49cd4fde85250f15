// Package model defines shared data structures.
package model

import "time"

// View identifies the active screen.
type View int

const (
	ViewWelcome View = iota
	ViewLogin
	ViewDashboard
	ViewLock
	ViewGuardianPortal
)

func (v View) String() string {
	switch v {
	case ViewWelcome:
		return "welcome"
	case ViewLogin:
		return "login"
	case ViewDashboard:
		return "dashboard"
	case ViewLock:
		return "lock"
	case ViewGuardianPortal:
		return "guardian"
	default:
		return "unknown"
	}
}

// Role is the login path picked on the welcome screen.
type Role int

const (
	RoleNone Role = iota
	RoleStudent
	RoleGuardian
)

func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "student"
	case RoleGuardian:
		return "guardian"
	default:
		return "none"
	}
}

// NoticeKind is the severity of a notice banner.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
	NoticeWarning
	NoticeInfo
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeSuccess:
		return "success"
	case NoticeError:
		return "error"
	case NoticeWarning:
		return "warning"
	case NoticeInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Notice is a transient banner. ID is unique per controller so an expiry
// scheduled for one notice never clears its successor.
type Notice struct {
	ID   uint64
	Kind NoticeKind
	Text string
}

// State is the session record.
type State struct {
	View          View
	Role          Role
	UserName      string
	GuardianEmail string
	DailyLimit    int
	Elapsed       int
	Locked        bool
	OTPIssued     bool
	OTP           string
	OTPInput      string
	Notice        *Notice
	DarkMode      bool
}

// Config defines session settings.
type Config struct {
	DailyLimit    int
	GuardianEmail string
	TickInterval  time.Duration
	NoticeTTL     time.Duration
	DarkMode      bool
}

// UsagePoint is one bar of the weekly usage chart.
type UsagePoint struct {
	Day     string
	Minutes int
}

// UnlockStatus is the outcome of an unlock request.
type UnlockStatus string

const (
	UnlockApproved UnlockStatus = "Approved"
	UnlockDenied   UnlockStatus = "Denied"
)

// UnlockRecord is one entry of the unlock history.
type UnlockRecord struct {
	Time   string
	Date   string
	Status UnlockStatus
}
