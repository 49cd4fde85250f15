package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Session.DailyLimit != nil {
		t.Fatalf("expected empty config")
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[session]
daily-limit = 45
guardian-email = "mum@example.com"
tick-interval = "250ms"
dark-mode = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	s := cfg.Session
	if s.DailyLimit == nil || *s.DailyLimit != 45 {
		t.Fatalf("unexpected daily limit: %v", s.DailyLimit)
	}
	if s.GuardianEmail == nil || *s.GuardianEmail != "mum@example.com" {
		t.Fatalf("unexpected guardian email: %v", s.GuardianEmail)
	}
	if s.TickInterval == nil || *s.TickInterval != "250ms" {
		t.Fatalf("unexpected tick interval: %v", s.TickInterval)
	}
	if s.DarkMode == nil || *s.DarkMode {
		t.Fatalf("unexpected dark mode: %v", s.DarkMode)
	}
	if s.NoticeTTL != nil || s.LogFile != nil {
		t.Fatalf("expected unset fields to stay nil")
	}
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[session]\nlimit = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "session.limit") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "focuslock", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultLogPath(); got != filepath.Join("/tmp/state", "focuslock", "focuslock.log") {
		t.Fatalf("unexpected log path %q", got)
	}
}
