package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache is a short-lived read-through cache for the report endpoints.
// Concurrent fills for the same key are collapsed through singleflight, and
// a broken redis never fails a read.
type Cache struct {
	client *redis.Client
	group  singleflight.Group
	ttl    time.Duration
	logger *zap.Logger
}

func NewCache(client *redis.Client, ttl time.Duration, logger ...*zap.Logger) *Cache {
	l := zap.L().Named("dashboard.cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.cache")
	}
	return &Cache{client: client, ttl: ttl, logger: l}
}

func (c *Cache) GetOrFill(ctx context.Context, key string, fill func() (any, error)) (json.RawMessage, error) {
	if c.client != nil {
		cached, err := c.client.Get(ctx, key).Bytes()
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redis.Nil) {
			c.logger.Debug("cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		fresh, err := fill()
		if err != nil {
			return nil, err
		}
		payload, err := json.Marshal(fresh)
		if err != nil {
			return nil, err
		}
		if c.client != nil {
			if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
				c.logger.Debug("cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
