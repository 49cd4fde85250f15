// Package otp generates and checks unlock passcodes.
package otp

import (
	"math/rand"
	"strconv"
	"time"
)

// Length is the number of digits in a passcode.
const Length = 6

const (
	minCode  = 100000
	codeSpan = 900000
)

// Generator produces passcodes. It is not cryptographically secure.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a fixed seed.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate draws a new six-digit passcode.
func (g *Generator) Generate() string {
	return strconv.Itoa(minCode + g.rnd.Intn(codeSpan))
}

// Valid reports whether code has the passcode shape: exactly six ASCII digits.
func Valid(code string) bool {
	if len(code) != Length {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
