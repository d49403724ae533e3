package cache

import (
	"context"
	"testing"

	"fuel-route-service/internal/domain"
)

func TestMemoryGeocodeCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryGeocodeCache()

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

	// Exact-string keying: a different spelling is a different entry.
	if _, ok, _ := c.Get(ctx, "chicago, il"); ok {
		t.Fatal("case-variant key unexpectedly hit")
	}

	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
}
