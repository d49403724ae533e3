package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"fuel-route-service/internal/domain"
)

func newTestRedisCache(t *testing.T, ttl time.Duration) *RedisGeocodeCache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisGeocodeCache(client, ttl)
}

func TestRedisGeocodeCache(t *testing.T) {
	ctx := context.Background()
	c := newTestRedisCache(t, 0)

	if _, ok, err := c.Get(ctx, "Chicago, IL"); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	want := domain.Coordinates{Lat: 41.8781, Lon: -87.6298}
	if err := c.Put(ctx, "Chicago, IL", want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "Chicago, IL")
	if err != nil || !ok {
		t.Fatalf("get after put: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestRedisGeocodeCacheOverwrite(t *testing.T) {
	ctx := context.Background()
	c := newTestRedisCache(t, 0)

	if err := c.Put(ctx, "Springfield", domain.Coordinates{Lat: 39.78, Lon: -89.65}); err != nil {
		t.Fatalf("first put: %v", err)
	}

	want := domain.Coordinates{Lat: 37.21, Lon: -93.29}
	if err := c.Put(ctx, "Springfield", want); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, ok, err := c.Get(ctx, "Springfield")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("last write should win: got %+v, want %+v", got, want)
	}
}
