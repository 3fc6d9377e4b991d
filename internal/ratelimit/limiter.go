package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a fixed-window request counter held in process memory. It keeps
// the recent request timestamps per key; state is lost on restart and is not
// shared across processes, which is fine for a single-instance deployment.
type Limiter struct {
	mu      sync.Mutex
	history map[string][]time.Time
	max     int
	window  time.Duration
	now     func() time.Time
}

// NewLimiter creates a limiter allowing max requests per window for each key.
func NewLimiter(max int, window time.Duration) *Limiter {
	return &Limiter{
		history: make(map[string][]time.Time),
		max:     max,
		window:  window,
		now:     time.Now,
	}
}

// Limited purges timestamps older than the window, then reports whether the
// key already reached the limit. A limited call is not recorded, so hammering
// a limited key does not extend the block.
func (l *Limiter) Limited(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := l.history[key][:0]
	for _, ts := range l.history[key] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= l.max {
		l.history[key] = recent
		return true
	}

	l.history[key] = append(recent, now)
	return false
}

// Reset drops all recorded state, for test isolation.
func (l *Limiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.history = make(map[string][]time.Time)
}

// Max returns the per-window request limit.
func (l *Limiter) Max() int {
	return l.max
}

// Window returns the limiter window.
func (l *Limiter) Window() time.Duration {
	return l.window
}
