// Package suggest implements the inline-completion pipeline: a debounced,
// superseding, rate-limited request loop per editor session.
package suggest

import (
	"sync"
	"time"
)

// Limiter bounds requests to max per sliding window. Timestamps are evicted
// lazily on each check. Allow and Record are split so a refused attempt does
// not consume budget.
type Limiter struct {
	mu         sync.Mutex
	max        int
	window     time.Duration
	now        func() time.Time
	timestamps []time.Time
}

func NewLimiter(max int, window time.Duration) *Limiter {
	return &Limiter{max: max, window: window, now: time.Now}
}

// SetClock replaces the time source. Tests drive the window with a fake
// clock.
func (l *Limiter) SetClock(now func() time.Time) {
	l.mu.Lock()
	l.now = now
	l.mu.Unlock()
}

// Allow reports whether a request may be issued right now.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.evict()
	return len(l.timestamps) < l.max
}

// Record logs one issued request.
func (l *Limiter) Record() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.timestamps = append(l.timestamps, l.now())
}

func (l *Limiter) evict() {
	cutoff := l.now().Add(-l.window)
	kept := l.timestamps[:0]
	for _, ts := range l.timestamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	l.timestamps = kept
}
