// Package ratelimit implements token bucket admission control for the proxy.
//
// Two levels are checked in order:
//   - Global: every request shares one bucket, bounding total upstream load
//   - IP: one bucket per caller address
//
// Each bucket refills at Rate tokens per second up to Burst, so short bursts
// pass while the long-run average stays at Rate.
package ratelimit

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Settings configures a Limiter. A level with Rate or Burst <= 0 is disabled.
type Settings struct {
	Cleanup      time.Duration
	MaxIPEntries int
	GlobalRate   float64
	GlobalBurst  int
	IPRate       float64
	IPBurst      int
}

// String summarizes the settings for startup logs.
func (s Settings) String() string {
	level := func(name string, rate float64, burst int) string {
		if rate <= 0 || burst <= 0 {
			return name + "=disabled"
		}
		return fmt.Sprintf("%s=%grps/%d", name, rate, burst)
	}
	return fmt.Sprintf("%s %s max_ip=%d",
		level("global", s.GlobalRate, s.GlobalBurst),
		level("ip", s.IPRate, s.IPBurst),
		s.MaxIPEntries,
	)
}

// Limiter combines the global and per-IP buckets. A nil Limiter allows everything.
type Limiter struct {
	global *Buckets
	ip     *Buckets
}

// New creates a Limiter from s.
func New(s Settings) *Limiter {
	return &Limiter{
		global: NewBuckets(s.GlobalRate, s.GlobalBurst, s.Cleanup, 1),
		ip:     NewBuckets(s.IPRate, s.IPBurst, s.Cleanup, s.MaxIPEntries),
	}
}

// Allow reports whether a request from clientIP may proceed, consuming a
// token from each level when it does.
func (l *Limiter) Allow(clientIP string) bool {
	if l == nil {
		return true
	}
	if !l.global.Allow("*") {
		return false
	}
	return l.ip.Allow(clientIP)
}

// Buckets is a keyed set of token buckets. It is safe for concurrent use.
type Buckets struct {
	limit      rate.Limit
	burst      int
	cleanup    time.Duration
	maxEntries int
	now        func() time.Time

	mu          sync.Mutex
	lastCleanup time.Time
	entries     map[string]*bucket
}

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewBuckets creates a bucket set. Keys beyond maxEntries are refused until
// idle keys are evicted.
func NewBuckets(perSecond float64, burst int, cleanup time.Duration, maxEntries int) *Buckets {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	if cleanup <= 0 {
		cleanup = time.Minute
	}
	return &Buckets{
		limit:       rate.Limit(perSecond),
		burst:       burst,
		cleanup:     cleanup,
		maxEntries:  maxEntries,
		now:         time.Now,
		lastCleanup: time.Now(),
		entries:     map[string]*bucket{},
	}
}

// Allow takes one token from key's bucket if available.
func (b *Buckets) Allow(key string) bool {
	if b == nil || b.limit <= 0 || b.burst <= 0 {
		return true
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	if now.Sub(b.lastCleanup) > b.cleanup {
		b.evictLocked(now)
	}

	e, known := b.entries[key]
	if !known {
		if len(b.entries) >= b.maxEntries {
			b.evictLocked(now)
			if len(b.entries) >= b.maxEntries {
				return false
			}
		}
		e = &bucket{lim: rate.NewLimiter(b.limit, b.burst)}
		b.entries[key] = e
	}
	e.lastSeen = now
	return e.lim.AllowN(now, 1)
}

// Len returns the number of tracked keys.
func (b *Buckets) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// evictLocked drops keys idle for longer than the cleanup interval.
// Must be called with b.mu held.
func (b *Buckets) evictLocked(now time.Time) {
	staleBefore := now.Add(-b.cleanup)
	for k, e := range b.entries {
		if !e.lastSeen.After(staleBefore) {
			delete(b.entries, k)
		}
	}
	b.lastCleanup = now
}
