// Package memory provides a process-local usage counter for development
// and single-instance deployments.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/davidbz/lessongen/internal/domain"
)

type entry struct {
	count     int
	expiresAt time.Time
}

// UsageCounter implements domain.UsageCounter in memory.
type UsageCounter struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// Option configures a UsageCounter.
type Option func(*UsageCounter)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *UsageCounter) {
		c.now = now
	}
}

// NewUsageCounter creates an empty in-memory counter.
func NewUsageCounter(opts ...Option) *UsageCounter {
	c := &UsageCounter{
		entries: make(map[string]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the request count for model on day, 0 if absent or expired.
func (c *UsageCounter) Get(_ context.Context, model string, day time.Time) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.live(domain.UsageKey(model, day))
	if !ok {
		return 0, nil
	}
	return e.count, nil
}

// Increment adds one request for model on day. The expiry is set on the
// first increment to the next UTC midnight.
func (c *UsageCounter) Increment(_ context.Context, model string, day time.Time) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := domain.UsageKey(model, day)
	e, ok := c.live(key)
	if !ok {
		now := c.now()
		c.sweep(now)
		e = entry{expiresAt: now.Add(domain.UntilNextUTCMidnight(now))}
	}
	e.count++
	c.entries[key] = e

	return e.count, nil
}

// sweep drops every expired entry. It runs when a key is created, so past
// days are evicted once the next day starts counting. Caller holds mu.
func (c *UsageCounter) sweep(now time.Time) {
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// live returns the entry for key, dropping it when expired. Caller holds mu.
func (c *UsageCounter) live(key string) (entry, bool) {
	e, ok := c.entries[key]
	if !ok {
		return entry{}, false
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return entry{}, false
	}
	return e, true
}
