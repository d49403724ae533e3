package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fuel-route-service/internal/domain"
)

const redisKeyPrefix = "geocode:"

// Redis-backed geocode cache for deployments where several instances
// share one cache. A zero TTL keeps entries indefinitely, matching the
// in-memory implementation.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

type redisEntry struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c *RedisGeocodeCache) Get(ctx context.Context, place string) (domain.Coordinates, bool, error) {
	if c.Client == nil {
		return domain.Coordinates{}, false, errors.New("redis geocode cache: client is nil")
	}

	raw, err := c.Client.Get(ctx, redisKeyPrefix+place).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: redis get: %w", err)
	}

	var entry redisEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: decode entry: %w", err)
	}

	return domain.Coordinates{Lat: entry.Lat, Lon: entry.Lon}, true, nil
}

func (c *RedisGeocodeCache) Put(ctx context.Context, place string, coords domain.Coordinates) error {
	if c.Client == nil {
		return errors.New("redis geocode cache: client is nil")
	}

	raw, err := json.Marshal(redisEntry{Lat: coords.Lat, Lon: coords.Lon})
	if err != nil {
		return fmt.Errorf("insert geocode cache: encode entry: %w", err)
	}

	if err := c.Client.Set(ctx, redisKeyPrefix+place, raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert geocode cache: redis set: %w", err)
	}

	return nil
}
