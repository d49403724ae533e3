package maps

import (
	"context"
	"fmt"
	"log"
	"strings"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
)

// CachedGeocoder memoizes an inner Geocoder through an injected
// GeocodeCache. Keys are exact place-name strings with surrounding
// whitespace trimmed.
//
// Cache failures degrade to a live geocode call; concurrent first-time
// lookups for the same uncached name may each call the upstream service,
// which is idempotent and absorbed by the cache afterwards.
type CachedGeocoder struct {
	Inner ports.Geocoder
	Cache ports.GeocodeCache
}

func NewCachedGeocoder(inner ports.Geocoder, cache ports.GeocodeCache) *CachedGeocoder {
	return &CachedGeocoder{Inner: inner, Cache: cache}
}

func (c *CachedGeocoder) Geocode(ctx context.Context, place string) (domain.Coordinates, error) {
	key := strings.TrimSpace(place)
	if key == "" {
		return domain.Coordinates{}, ports.ErrNoGeocodeResult
	}

	if c.Cache != nil {
		coords, ok, err := c.Cache.Get(ctx, key)
		if err != nil {
			log.Printf("geocode cache read failed: place=%q err=%v", key, err)
		} else if ok {
			return coords, nil
		}
	}

	coords, err := c.Inner.Geocode(ctx, key)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("cached geocode: %w", err)
	}

	if c.Cache != nil {
		if err := c.Cache.Put(ctx, key, coords); err != nil {
			log.Printf("geocode cache write failed: place=%q err=%v", key, err)
		}
	}

	return coords, nil
}
