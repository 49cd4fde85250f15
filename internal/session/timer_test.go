package session

import "testing"

func TestAccrualTimerSingleInstance(t *testing.T) {
	var timer AccrualTimer
	token, ok := timer.Start()
	if !ok {
		t.Fatalf("expected first start to succeed")
	}
	again, ok := timer.Start()
	if ok {
		t.Fatalf("expected second start to be refused")
	}
	if again != token {
		t.Fatalf("expected live token %d, got %d", token, again)
	}
	if !timer.Owns(token) {
		t.Fatalf("expected live token to be owned")
	}
	if timer.Token() != token {
		t.Fatalf("expected Token to report %d, got %d", token, timer.Token())
	}
}

func TestAccrualTimerStaleTokenAfterRestart(t *testing.T) {
	var timer AccrualTimer
	first, _ := timer.Start()
	timer.Stop()
	if timer.Running() {
		t.Fatalf("expected timer to stop")
	}
	if timer.Owns(first) {
		t.Fatalf("stopped token must not be owned")
	}
	second, ok := timer.Start()
	if !ok {
		t.Fatalf("expected restart to succeed")
	}
	if second == first {
		t.Fatalf("expected a fresh token on restart")
	}
	if timer.Owns(first) {
		t.Fatalf("stale token must not be owned after restart")
	}
	if !timer.Owns(second) {
		t.Fatalf("expected new token to be owned")
	}
}
