package ports

import (
	"context"
	"errors"

	"fuel-route-service/internal/domain"
)

// Returned when the geocoding service yields no candidate locations for
// a place name. Distinct from transport failures, which are never
// collapsed into an empty result.
var ErrNoGeocodeResult = errors.New("geocode: no results")

// Contract for resolving a free-text place name into coordinates.
type Geocoder interface {
	// Resolve a place name to coordinates, using the first candidate
	// returned by the underlying service.
	Geocode(ctx context.Context, place string) (domain.Coordinates, error)
}
