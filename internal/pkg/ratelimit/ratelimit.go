// Package ratelimit counts requests per key in fixed windows.
package ratelimit

import (
	"sync"
	"time"

	"atlas-hotel/internal/pkg/clock"
)

type Rule struct {
	Limit  int
	Window time.Duration
}

type bucket struct {
	count   int
	resetAt time.Time
}

type Limiter struct {
	mu      sync.Mutex
	clock   clock.Clock
	buckets map[string]*bucket
}

func New(c clock.Clock) *Limiter {
	return &Limiter{
		clock:   c,
		buckets: make(map[string]*bucket),
	}
}

// Exceeded records one hit for key and reports whether the rule's limit is now
// passed. A hit is counted even when it is rejected.
func (l *Limiter) Exceeded(key string, rule Rule) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{resetAt: now.Add(rule.Window)}
		l.buckets[key] = b
	}
	if now.After(b.resetAt) {
		b.count = 0
		b.resetAt = now.Add(rule.Window)
	}
	b.count++

	return b.count > rule.Limit
}

// Prune drops buckets whose window has elapsed.
func (l *Limiter) Prune() int {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, b := range l.buckets {
		if now.After(b.resetAt) {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}
