package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/lessongen/internal/domain"
	"github.com/davidbz/lessongen/internal/observability"
)

const pingTimeout = 5 * time.Second

// incrementScript increments a counter and sets its expiry on first use,
// or whenever the key somehow lost its TTL, in one atomic step.
//
//nolint:gochecknoglobals // Compiled script is immutable
var incrementScript = redis.NewScript(`
local n = redis.call('INCR', KEYS[1])
if n == 1 or redis.call('PTTL', KEYS[1]) == -1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return n
`)

// UsageCounter implements domain.UsageCounter on Redis.
type UsageCounter struct {
	client redis.UniversalClient
	now    func() time.Time
}

// UsageCounterOption configures a UsageCounter.
type UsageCounterOption func(*UsageCounter)

// WithClock overrides the time source used to compute expiries.
func WithClock(now func() time.Time) UsageCounterOption {
	return func(c *UsageCounter) {
		c.now = now
	}
}

// NewUsageCounter creates a Redis usage counter.
func NewUsageCounter(client redis.UniversalClient, opts ...UsageCounterOption) *UsageCounter {
	c := &UsageCounter{
		client: client,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromURL parses a redis:// URL, connects and pings.
func NewClientFromURL(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// Get returns the request count for model on day, 0 if absent.
func (c *UsageCounter) Get(ctx context.Context, model string, day time.Time) (int, error) {
	key := domain.UsageKey(model, day)

	count, err := c.client.Get(ctx, key).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: get %s: %w", domain.ErrStoreUnavailable, key, err)
	}

	return count, nil
}

// Increment atomically adds one request for model on day.
func (c *UsageCounter) Increment(ctx context.Context, model string, day time.Time) (int, error) {
	key := domain.UsageKey(model, day)
	ttl := domain.UntilNextUTCMidnight(c.now())

	count, err := incrementScript.Run(ctx, c.client, []string{key}, ttl.Milliseconds()).Int()
	if err != nil {
		observability.FromContext(ctx).Error("usage increment failed",
			observability.String("key", key),
			observability.Error(err))
		return 0, fmt.Errorf("%w: increment %s: %w", domain.ErrStoreUnavailable, key, err)
	}

	observability.FromContext(ctx).Debug("usage incremented",
		observability.String("key", key),
		observability.Int("count", count),
		observability.Duration("ttl", ttl))

	return count, nil
}
