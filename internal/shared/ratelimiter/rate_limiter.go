// Package ratelimiter provides a fixed-window request limiter keyed by
// caller identity, used to throttle login attempts per client address.
package ratelimiter

import (
	"sync"
	"time"
)

// window tracks request counts within one fixed interval.
type window struct {
	count int
	start time.Time
}

// Limiter limits the number of operations per key within a fixed interval.
// It is safe for concurrent use.
type Limiter struct {
	limit    int
	interval time.Duration

	mu      sync.Mutex
	windows map[string]*window

	now func() time.Time // overridable in tests
}

// New creates a Limiter that allows limit operations per key per interval.
func New(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
		now:      time.Now,
	}
}

// Allow reports whether another operation is permitted for the given key.
// It never blocks; callers reject the request when it returns false.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.interval {
		l.windows[key] = &window{count: 1, start: now}
		l.prune(now)
		return true
	}

	w.count++
	return w.count <= l.limit
}

// prune drops expired windows so the map does not grow with every distinct
// key ever seen. Called with the lock held, only when a window rolls over.
func (l *Limiter) prune(now time.Time) {
	for key, w := range l.windows {
		if now.Sub(w.start) >= l.interval {
			delete(l.windows, key)
		}
	}
}
