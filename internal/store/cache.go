package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/osukit/pp-api/internal/engine"
)

// RedisAttributeCache caches difficulty attributes in Redis. Every failure
// is treated as a miss; the pipeline never depends on the cache being up.
type RedisAttributeCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewRedisAttributeCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisAttributeCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisAttributeCache{
		client: client,
		ttl:    ttl,
		logger: logger.Sugar(),
	}
}

func (c *RedisAttributeCache) GetDifficulty(ctx context.Context, key string) (*engine.DifficultyAttributes, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warnw("attribute cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var attrs engine.DifficultyAttributes
	if err := json.Unmarshal(raw, &attrs); err != nil {
		c.logger.Warnw("attribute cache entry corrupt", "key", key, "error", err)
		return nil, false
	}
	return &attrs, true
}

func (c *RedisAttributeCache) SetDifficulty(ctx context.Context, key string, attrs engine.DifficultyAttributes) {
	raw, err := json.Marshal(attrs)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warnw("attribute cache write failed", "key", key, "error", err)
	}
}
