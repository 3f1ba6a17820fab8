// FilePath: internal/cache/cache.redis.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gobees/hub/internal/config"
	"github.com/gobees/hub/internal/models"
	"github.com/redis/go-redis/v9"
	nuts "github.com/vaudience/go-nuts"
)

const keyPrefix = "gobees:recordings:"

// RedisCache stores aggregated recordings as JSON under
// gobees:recordings:<hiveID> with a TTL. Cache failures only log; a
// broken cache degrades to re-aggregation, never to an error.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}

	nuts.L.Infof("[RedisCache] Connected to %s:%d", cfg.Host, cfg.Port)
	return &RedisCache{client: client, ttl: cfg.TTL}, nil
}

func (c *RedisCache) Get(ctx context.Context, hiveID int64) ([]models.Recording, bool) {
	data, err := c.client.Get(ctx, key(hiveID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			nuts.L.Warnf("[RedisCache] Get failed for hive %d: %v", hiveID, err)
		}
		return nil, false
	}

	var recordings []models.Recording
	if err := json.Unmarshal(data, &recordings); err != nil {
		nuts.L.Warnf("[RedisCache] Corrupt entry for hive %d: %v", hiveID, err)
		c.Invalidate(ctx, hiveID)
		return nil, false
	}
	return recordings, true
}

func (c *RedisCache) Set(ctx context.Context, hiveID int64, recordings []models.Recording) {
	data, err := json.Marshal(recordings)
	if err != nil {
		nuts.L.Warnf("[RedisCache] Marshal failed for hive %d: %v", hiveID, err)
		return
	}
	if err := c.client.Set(ctx, key(hiveID), data, c.ttl).Err(); err != nil {
		nuts.L.Warnf("[RedisCache] Set failed for hive %d: %v", hiveID, err)
	}
}

func (c *RedisCache) Invalidate(ctx context.Context, hiveID int64) {
	if err := c.client.Del(ctx, key(hiveID)).Err(); err != nil {
		nuts.L.Warnf("[RedisCache] Invalidate failed for hive %d: %v", hiveID, err)
	}
}

func (c *RedisCache) InvalidateAll(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			nuts.L.Warnf("[RedisCache] InvalidateAll delete failed: %v", err)
		}
	}
	if err := iter.Err(); err != nil {
		nuts.L.Warnf("[RedisCache] InvalidateAll scan failed: %v", err)
	}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func key(hiveID int64) string {
	return keyPrefix + strconv.FormatInt(hiveID, 10)
}
