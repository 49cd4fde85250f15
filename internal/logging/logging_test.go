package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelDebug)
	log.With("session", "abc").Info("locked", "elapsed", 3)

	out := buf.String()
	for _, want := range []string{"level=INFO", "msg=locked", "session=abc", "elapsed=3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelWarn)
	log.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}
}

func TestOpenEmptyPathDiscards(t *testing.T) {
	log, closer, err := Open("")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if closer == nil {
		t.Fatalf("expected non-nil closer")
	}
	log.Info("dropped")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "focuslock.log")
	log, closer, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	log.Debug("first")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	log, closer, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	log.Info("second")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "msg=first") || !strings.Contains(out, "msg=second") {
		t.Fatalf("expected both records, got:\n%s", out)
	}
}
