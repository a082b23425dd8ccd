package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counter is an expirable shared counter, used for rate limiting across
// instances instead of unscoped process memory.
type Counter interface {
	// Incr increments the counter stored at key, setting it to expire after
	// window when first created. It returns the new count and the time left
	// until the counter resets.
	Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
	Close() error
}

type redisCounter struct {
	client *redis.Client
	prefix string
}

// NewRedisCounter creates a Redis-backed counter.
func NewRedisCounter(addr, prefix string) Counter {
	return &redisCounter{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		prefix: prefix,
	}
}

func (c *redisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	key = fmt.Sprintf("%s:%s", c.prefix, key)

	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	ttl := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, err
	}

	return incr.Val(), ttl.Val(), nil
}

func (c *redisCounter) Close() error {
	return c.client.Close()
}
