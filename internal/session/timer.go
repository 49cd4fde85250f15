package session

// AccrualTimer tracks the single live accrual timer instance. The periodic
// callback itself is scheduled by the caller; each scheduled tick carries the
// token returned by Start and is honored only while Owns reports true.
type AccrualTimer struct {
	token   int
	running bool
}

// Start mints a new instance token. It returns false if an instance is
// already live.
func (t *AccrualTimer) Start() (int, bool) {
	if t.running {
		return t.token, false
	}
	t.token++
	t.running = true
	return t.token, true
}

// Stop cancels the live instance, if any.
func (t *AccrualTimer) Stop() {
	t.running = false
}

// Running reports whether an instance is live.
func (t *AccrualTimer) Running() bool {
	return t.running
}

// Token returns the most recently minted instance token.
func (t *AccrualTimer) Token() int {
	return t.token
}

// Owns reports whether token belongs to the live instance.
func (t *AccrualTimer) Owns(token int) bool {
	return t.running && token == t.token
}
