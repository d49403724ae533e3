package ports

import (
	"context"

	"fuel-route-service/internal/domain"
)

// Port: a boundary for memoizing place name -> coordinate lookups.
// Keys are exact place-name strings; implementations decide lifetime
// (process memory, Redis, Postgres).
type GeocodeCache interface {
	// Look up a cached coordinate. The bool reports presence.
	Get(ctx context.Context, place string) (domain.Coordinates, bool, error)
	// Store a resolved coordinate. Last write wins.
	Put(ctx context.Context, place string, coords domain.Coordinates) error
}
