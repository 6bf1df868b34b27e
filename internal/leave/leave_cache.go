package leave

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	listCacheKey = "leave:applications:v1"
	listCacheTTL = 30 * time.Second
)

// ListCache holds the full leave application list for the admin view. The
// short TTL bounds staleness between the poll-style reads the dashboard does;
// writes invalidate eagerly.
type ListCache interface {
	Get(ctx context.Context) ([]LeaveResponse, bool, error)
	Put(ctx context.Context, list []LeaveResponse) error
	Invalidate(ctx context.Context) error
}

type redisListCache struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisListCache(client *redis.Client) ListCache {
	return &redisListCache{
		client: client,
		logger: zap.L().Named("leave_cache"),
	}
}

func (c *redisListCache) Get(ctx context.Context) ([]LeaveResponse, bool, error) {
	raw, err := c.client.Get(ctx, listCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var list []LeaveResponse
	if err := json.Unmarshal(raw, &list); err != nil {
		// Treat a corrupt entry as a miss and let the caller refill.
		c.logger.Warn("dropping unreadable cache entry", zap.Error(err))
		_ = c.client.Del(ctx, listCacheKey).Err()
		return nil, false, nil
	}
	return list, true, nil
}

func (c *redisListCache) Put(ctx context.Context, list []LeaveResponse) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listCacheKey, raw, listCacheTTL).Err()
}

func (c *redisListCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, listCacheKey).Err()
}
