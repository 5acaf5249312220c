package notification

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultDedupTTL = 10 * time.Minute

// RedisDedup marks a job key the first time it is seen so replicas that
// receive the same job skip it.
type RedisDedup struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisDedup(rdb *redis.Client, ttl time.Duration) *RedisDedup {
	if ttl <= 0 {
		ttl = DefaultDedupTTL
	}
	return &RedisDedup{rdb: rdb, ttl: ttl}
}

func (r *RedisDedup) FirstDelivery(ctx context.Context, key string) (bool, error) {
	return r.rdb.SetNX(ctx, key, 1, r.ttl).Result()
}
