package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock is advanced by hand.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestBuckets(rate float64, burst int, maxEntries int) (*Buckets, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	b := NewBuckets(rate, burst, time.Minute, maxEntries)
	b.now = clock.Now
	b.lastCleanup = clock.Now()
	return b, clock
}

func TestBuckets_BurstThenDeny(t *testing.T) {
	b, _ := newTestBuckets(1, 3, 10)

	for i := 0; i < 3; i++ {
		assert.True(t, b.Allow("a"), "request %d should pass", i)
	}
	assert.False(t, b.Allow("a"))
}

func TestBuckets_Refill(t *testing.T) {
	b, clock := newTestBuckets(2, 2, 10)

	assert.True(t, b.Allow("a"))
	assert.True(t, b.Allow("a"))
	assert.False(t, b.Allow("a"))

	clock.Advance(500 * time.Millisecond)
	assert.True(t, b.Allow("a"))
	assert.False(t, b.Allow("a"))
}

func TestBuckets_KeysAreIndependent(t *testing.T) {
	b, _ := newTestBuckets(1, 1, 10)

	assert.True(t, b.Allow("a"))
	assert.False(t, b.Allow("a"))
	assert.True(t, b.Allow("b"))
}

func TestBuckets_MaxEntries(t *testing.T) {
	b, clock := newTestBuckets(1, 5, 2)

	assert.True(t, b.Allow("a"))
	assert.True(t, b.Allow("b"))
	assert.False(t, b.Allow("c"), "table full")

	clock.Advance(2 * time.Minute)
	assert.True(t, b.Allow("c"), "idle keys evicted")
	assert.Equal(t, 1, b.Len())
}

func TestBuckets_Disabled(t *testing.T) {
	for _, b := range []*Buckets{NewBuckets(0, 5, 0, 1), NewBuckets(5, 0, 0, 1), nil} {
		for i := 0; i < 100; i++ {
			assert.True(t, b.Allow("a"))
		}
	}
}

func TestLimiter_GlobalAppliesAcrossIPs(t *testing.T) {
	l := New(Settings{GlobalRate: 1, GlobalBurst: 2, MaxIPEntries: 100})

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"))
	assert.False(t, l.Allow("10.0.0.3"))
}

func TestLimiter_PerIP(t *testing.T) {
	l := New(Settings{IPRate: 1, IPBurst: 1, MaxIPEntries: 100})

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"))
}

func TestLimiter_Nil(t *testing.T) {
	var l *Limiter
	assert.True(t, l.Allow("10.0.0.1"))
}

func TestSettings_String(t *testing.T) {
	s := Settings{IPRate: 2, IPBurst: 10, MaxIPEntries: 500}
	assert.Equal(t, "global=disabled ip=2rps/10 max_ip=500", s.String())
}

func TestBuckets_Concurrent(t *testing.T) {
	b := NewBuckets(1, 50, time.Minute, 10)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if b.Allow("a") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Refill during the loop can add at most a token or two.
	assert.GreaterOrEqual(t, allowed, 50)
	assert.LessOrEqual(t, allowed, 52)
}
