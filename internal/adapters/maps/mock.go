package maps

import (
	"context"
	"fmt"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
)

// In-memory Geocoder for tests. Calls counts upstream invocations so
// cache behavior can be asserted.
type MockGeocoder struct {
	Places map[string]domain.Coordinates
	Calls  int
}

func NewMockGeocoder(places map[string]domain.Coordinates) *MockGeocoder {
	return &MockGeocoder{Places: places}
}

func (m *MockGeocoder) Geocode(ctx context.Context, place string) (domain.Coordinates, error) {
	m.Calls++
	c, ok := m.Places[place]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("mock geocode %q: %w", place, ports.ErrNoGeocodeResult)
	}
	return c, nil
}

// In-memory DirectionsProvider for tests. A nil Route pointer simulates
// the no-route case.
type MockDirections struct {
	Route *domain.Route
	Calls int
}

func (m *MockDirections) GetRoute(ctx context.Context, origin, destination domain.Coordinates) (domain.Route, error) {
	m.Calls++
	if m.Route == nil {
		return domain.Route{}, ports.ErrRouteNotFound
	}
	return *m.Route, nil
}
