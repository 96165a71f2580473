package game

import "time"

// Timer accumulates running time against an optional limit.
type Timer struct {
	limit   time.Duration
	elapsed time.Duration
	fired   bool
}

// NewTimer creates a timer. A zero limit never expires.
func NewTimer(limit time.Duration) *Timer {
	return &Timer{limit: limit}
}

// Reset restarts the timer with a new limit.
func (t *Timer) Reset(limit time.Duration) {
	t.limit = limit
	t.elapsed = 0
	t.fired = false
}

// Advance adds dt and reports whether the limit was crossed by this call.
// It reports true at most once per reset.
func (t *Timer) Advance(dt time.Duration) bool {
	if dt > 0 {
		t.elapsed += dt
	}
	if t.limit <= 0 || t.fired || t.elapsed < t.limit {
		return false
	}
	t.fired = true
	return true
}

// Elapsed returns the accumulated time.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining returns the time left, or 0 without a limit.
func (t *Timer) Remaining() time.Duration {
	if t.limit <= 0 {
		return 0
	}
	return max(t.limit-t.elapsed, 0)
}

// Limited reports whether the timer has a limit.
func (t *Timer) Limited() bool {
	return t.limit > 0
}
