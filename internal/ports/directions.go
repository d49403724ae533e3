package ports

import (
	"context"
	"errors"

	"fuel-route-service/internal/domain"
)

// Returned when the directions service has no usable route between two
// points.
var ErrRouteNotFound = errors.New("directions: route not found")

// Contract for retrieving a driving route between two coordinates.
type DirectionsProvider interface {
	// Return the total distance and encoded overview polyline of the
	// best route from origin to destination.
	GetRoute(ctx context.Context, origin, destination domain.Coordinates) (domain.Route, error)
}
