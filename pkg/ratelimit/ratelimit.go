// Package ratelimit implements a fixed-window request limiter keyed by
// client identity. State is process-local and in-memory: every identity's
// quota resets when the process restarts. That is accepted behavior for
// this service, not something callers should try to work around.
package ratelimit

import (
	"sync"
	"time"
)

type record struct {
	count     int
	resetTime time.Time
}

// Limiter caps requests per identity inside a fixed window.
type Limiter struct {
	mu      sync.Mutex
	records map[string]*record

	max    int
	window time.Duration

	stop chan struct{}
	once sync.Once
}

// New creates a limiter allowing max requests per window for each identity.
// A background sweep evicts expired records so the map stays bounded by the
// number of distinct identities seen within one window.
func New(max int, window time.Duration) *Limiter {
	l := &Limiter{
		records: make(map[string]*record),
		max:     max,
		window:  window,
		stop:    make(chan struct{}),
	}
	go l.sweep()
	return l
}

// Allow reports whether the identity may make another request now. The
// first request in a window creates the record; an expired window restarts
// with count 1. The check-and-increment is atomic under the mutex.
func (l *Limiter) Allow(identity string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	r, ok := l.records[identity]
	if !ok || now.After(r.resetTime) {
		l.records[identity] = &record{count: 1, resetTime: now.Add(l.window)}
		return true
	}

	if r.count >= l.max {
		return false
	}

	r.count++
	return true
}

// Window returns the configured window length.
func (l *Limiter) Window() time.Duration { return l.window }

// Max returns the configured per-window request cap.
func (l *Limiter) Max() int { return l.max }

// Close stops the background sweep.
func (l *Limiter) Close() {
	l.once.Do(func() { close(l.stop) })
}

func (l *Limiter) sweep() {
	t := time.NewTicker(l.window)
	defer t.Stop()
	for {
		select {
		case <-l.stop:
			return
		case now := <-t.C:
			l.mu.Lock()
			for id, r := range l.records {
				if now.After(r.resetTime) {
					delete(l.records, id)
				}
			}
			l.mu.Unlock()
		}
	}
}
