package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/focuslock/internal/config"
	"github.com/verte-zerg/focuslock/internal/model"
	"github.com/verte-zerg/focuslock/internal/session"
	"github.com/verte-zerg/focuslock/internal/store"
)

func TestApplyFileConfigRespectsFlags(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Flags().Set("limit", "45"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	limit := 90
	email := "parent@example.com"
	tick := "250ms"
	dark := false
	fc := config.SessionConfig{
		DailyLimit:    &limit,
		GuardianEmail: &email,
		TickInterval:  &tick,
		DarkMode:      &dark,
	}
	if err := applyFileConfig(cmd, fc); err != nil {
		t.Fatalf("apply config: %v", err)
	}
	if sessionLimit != 45 {
		t.Fatalf("expected flag to win, got %d", sessionLimit)
	}
	if sessionGuardianEmail != email {
		t.Fatalf("expected email from config, got %q", sessionGuardianEmail)
	}
	if sessionTickInterval != 250*time.Millisecond {
		t.Fatalf("expected tick from config, got %s", sessionTickInterval)
	}
	if !sessionLight {
		t.Fatalf("expected light theme from dark-mode = false")
	}
	if sessionNoticeTTL != session.DefaultNoticeTTL {
		t.Fatalf("expected default notice ttl, got %s", sessionNoticeTTL)
	}
}

func TestApplyFileConfigInvalidDuration(t *testing.T) {
	cmd := newRootCmd()
	bad := "soon"
	if err := applyFileConfig(cmd, config.SessionConfig{NoticeTTL: &bad}); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}

func TestValidateConfig(t *testing.T) {
	valid := model.Config{
		DailyLimit:    120,
		GuardianEmail: "guardian@example.com",
		TickInterval:  time.Millisecond,
		NoticeTTL:     time.Second,
	}
	if err := validateConfig(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string]func(*model.Config){
		"negative limit": func(c *model.Config) { c.DailyLimit = -1 },
		"empty email":    func(c *model.Config) { c.GuardianEmail = "  " },
		"zero tick":      func(c *model.Config) { c.TickInterval = 0 },
		"zero ttl":       func(c *model.Config) { c.NoticeTTL = 0 },
	}
	for name, mutate := range cases {
		cfg := valid
		mutate(&cfg)
		if err := validateConfig(cfg); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestDefaultConfigTemplate(t *testing.T) {
	tmpl := defaultConfigTemplate()
	for _, want := range []string{"[session]", "daily-limit = 120", "guardian-email", "notice-ttl"} {
		if !strings.Contains(tmpl, want) {
			t.Fatalf("template missing %q", want)
		}
	}
}

func TestWriteHistory(t *testing.T) {
	st, err := store.Open(store.MemoryDSN)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer func() {
		_ = st.Close()
	}()

	var buf bytes.Buffer
	if err := writeHistory(context.Background(), &buf, st, 40); err != nil {
		t.Fatalf("write history: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Weekly Usage", "Mon", "156m", "Sun", "Weekly Avg: 128 min", "Unlock History", "2 days ago", "Denied"} {
		if !strings.Contains(out, want) {
			t.Fatalf("history output missing %q:\n%s", want, out)
		}
	}
}
