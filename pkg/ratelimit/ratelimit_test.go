package ratelimit

import (
	"sync"
	"testing"
	"time"
)

func TestAllow_UnderLimit(t *testing.T) {
	l := New(5, time.Minute)
	defer l.Close()

	for i := 0; i < 5; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
}

func TestAllow_OverLimit(t *testing.T) {
	l := New(5, time.Minute)
	defer l.Close()

	for i := 0; i < 5; i++ {
		l.Allow("1.2.3.4")
	}
	if l.Allow("1.2.3.4") {
		t.Error("6th request in the window should be rejected")
	}
}

func TestAllow_IdentitiesIndependent(t *testing.T) {
	l := New(3, time.Minute)
	defer l.Close()

	for i := 0; i < 3; i++ {
		l.Allow("1.2.3.4")
	}
	if l.Allow("1.2.3.4") {
		t.Error("exhausted identity should be rejected")
	}
	if !l.Allow("5.6.7.8") {
		t.Error("different identity should be allowed in the same window")
	}
}

func TestAllow_WindowRestart(t *testing.T) {
	l := New(2, 20*time.Millisecond)
	defer l.Close()

	l.Allow("1.2.3.4")
	l.Allow("1.2.3.4")
	if l.Allow("1.2.3.4") {
		t.Fatal("limit should be exhausted")
	}

	time.Sleep(30 * time.Millisecond)

	if !l.Allow("1.2.3.4") {
		t.Error("request after window expiry should restart the window")
	}
	if !l.Allow("1.2.3.4") {
		t.Error("second request of the new window should be allowed")
	}
	if l.Allow("1.2.3.4") {
		t.Error("third request of the new window should be rejected")
	}
}

func TestAllow_ConcurrentSameIdentity(t *testing.T) {
	const limit = 50
	l := New(limit, time.Minute)
	defer l.Close()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for i := 0; i < limit*2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("1.2.3.4") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != limit {
		t.Errorf("expected exactly %d allowed under concurrency, got %d", limit, allowed)
	}
}

func TestSweep_EvictsExpired(t *testing.T) {
	l := New(1, 10*time.Millisecond)
	defer l.Close()

	l.Allow("1.2.3.4")
	l.Allow("5.6.7.8")

	time.Sleep(35 * time.Millisecond)

	l.mu.Lock()
	n := len(l.records)
	l.mu.Unlock()

	if n != 0 {
		t.Errorf("expected expired records to be swept, %d remain", n)
	}
}
