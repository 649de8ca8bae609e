package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/okian/ludex/internal/domain/model"
	"github.com/okian/ludex/pkg/logger"
	"github.com/okian/ludex/pkg/metrics"
)

// keyPrefix namespaces ranking entries inside a shared Redis.
const keyPrefix = "ludex:results:"

// Redis implements Cache on a Redis backend so a fleet of ranking
// processes can share one result cache. Any backend error degrades to a
// miss; ranking never blocks on the cache.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	log    logger.Logger
}

// RedisOption applies a configuration option to the Redis cache.
type RedisOption func(*Redis)

// WithRedisTTL sets the server-side entry lifetime.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(c *Redis) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// NewRedis creates a Redis-backed cache talking to addr.
func NewRedis(addr string, opts ...RedisOption) *Redis {
	c := &Redis{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    defaultTTL,
		log:    logger.Named("cache"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get implements Cache.
func (c *Redis) Get(ctx context.Context, key string) ([]model.ScoredRecord, bool) {
	payload, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			metrics.RecordCacheError()
			c.log.Warn(ctx, "cache read failed; treating as miss", logger.Error(err))
		}
		return nil, false
	}
	var results []model.ScoredRecord
	if err := json.Unmarshal(payload, &results); err != nil {
		metrics.RecordCacheError()
		c.log.Warn(ctx, "cache entry undecodable; treating as miss", logger.Error(err))
		return nil, false
	}
	return results, true
}

// Put implements Cache.
func (c *Redis) Put(ctx context.Context, key string, results []model.ScoredRecord) {
	payload, err := json.Marshal(results)
	if err != nil {
		metrics.RecordCacheError()
		return
	}
	if err := c.client.Set(ctx, keyPrefix+key, payload, c.ttl).Err(); err != nil {
		metrics.RecordCacheError()
		c.log.Warn(ctx, "cache write failed; entry dropped", logger.Error(err))
	}
}

// Len implements Cache. Counting keys server-side is an O(n) SCAN; the
// DBSize approximation is good enough for stats.
func (c *Redis) Len(ctx context.Context) int {
	n, err := c.client.DBSize(ctx).Result()
	if err != nil {
		return 0
	}
	return int(n)
}

// Close releases the underlying client.
func (c *Redis) Close() error {
	return c.client.Close()
}
