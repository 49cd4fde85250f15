package otp

import (
	"regexp"
	"testing"
)

var codePattern = regexp.MustCompile(`^[0-9]{6}$`)

func TestGenerateFormat(t *testing.T) {
	gen := NewWithSeed(42)
	for i := 0; i < 1000; i++ {
		code := gen.Generate()
		if !codePattern.MatchString(code) {
			t.Fatalf("draw %d: unexpected code %q", i, code)
		}
		if !Valid(code) {
			t.Fatalf("draw %d: Valid rejected %q", i, code)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := NewWithSeed(7)
	b := NewWithSeed(7)
	for i := 0; i < 10; i++ {
		if ca, cb := a.Generate(), b.Generate(); ca != cb {
			t.Fatalf("draw %d: expected equal codes, got %q and %q", i, ca, cb)
		}
	}
}

func TestValid(t *testing.T) {
	cases := map[string]bool{
		"123456":  true,
		"000000":  true,
		"12345":   false,
		"1234567": false,
		"12a456":  false,
		" 23456":  false,
		"":        false,
		"１２３４５６": false,
	}
	for code, want := range cases {
		if got := Valid(code); got != want {
			t.Fatalf("Valid(%q) = %v, want %v", code, got, want)
		}
	}
}
