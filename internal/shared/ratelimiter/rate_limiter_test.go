package ratelimiter

import (
	"sync"
	"testing"
	"time"
)

// newTestLimiter pins the limiter's clock so window expiry can be driven
// without sleeping.
func newTestLimiter(limit int, interval time.Duration) (*Limiter, *time.Time) {
	l := New(limit, interval)
	current := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }
	return l, &current
}

func TestLimiter_AllowWithinLimit(t *testing.T) {
	t.Parallel()

	l, _ := newTestLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Error("request over the limit should be rejected")
	}
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	l, _ := newTestLimiter(1, time.Minute)

	if !l.Allow("10.0.0.1") {
		t.Fatal("first key should be allowed")
	}
	if !l.Allow("10.0.0.2") {
		t.Error("a different key must have its own window")
	}
	if l.Allow("10.0.0.1") {
		t.Error("first key should now be exhausted")
	}
}

func TestLimiter_WindowResets(t *testing.T) {
	t.Parallel()

	l, current := newTestLimiter(1, time.Minute)

	if !l.Allow("10.0.0.1") {
		t.Fatal("first request should be allowed")
	}
	if l.Allow("10.0.0.1") {
		t.Fatal("second request should be rejected")
	}

	*current = current.Add(time.Minute)

	if !l.Allow("10.0.0.1") {
		t.Error("request after window expiry should be allowed")
	}
}

func TestLimiter_PrunesExpiredWindows(t *testing.T) {
	t.Parallel()

	l, current := newTestLimiter(1, time.Minute)

	l.Allow("10.0.0.1")
	l.Allow("10.0.0.2")
	l.Allow("10.0.0.3")

	*current = current.Add(2 * time.Minute)

	// A rollover on any key sweeps the expired entries.
	l.Allow("10.0.0.1")

	l.mu.Lock()
	size := len(l.windows)
	l.mu.Unlock()

	if size != 1 {
		t.Errorf("expected 1 live window after pruning, got %d", size)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	t.Parallel()

	l := New(50, time.Minute)

	var wg sync.WaitGroup
	allowed := make(chan bool, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed <- l.Allow("shared")
		}()
	}
	wg.Wait()
	close(allowed)

	count := 0
	for ok := range allowed {
		if ok {
			count++
		}
	}
	if count != 50 {
		t.Errorf("expected exactly 50 allowed requests, got %d", count)
	}
}
