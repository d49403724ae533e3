package cache

import (
	"context"
	"sync"

	"fuel-route-service/internal/domain"
)

// Process-lifetime in-memory geocode cache. No eviction and no TTL:
// entries are keyed by exact place name and geocoding results are
// deterministic per name, so staleness is not a correctness concern.
//
// Safe for concurrent use.
type MemoryGeocodeCache struct {
	mu      sync.RWMutex
	entries map[string]domain.Coordinates
}

func NewMemoryGeocodeCache() *MemoryGeocodeCache {
	return &MemoryGeocodeCache{entries: make(map[string]domain.Coordinates)}
}

func (c *MemoryGeocodeCache) Get(ctx context.Context, place string) (domain.Coordinates, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	coords, ok := c.entries[place]
	return coords, ok, nil
}

func (c *MemoryGeocodeCache) Put(ctx context.Context, place string, coords domain.Coordinates) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[place] = coords
	return nil
}

// Len reports the number of cached entries.
func (c *MemoryGeocodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
