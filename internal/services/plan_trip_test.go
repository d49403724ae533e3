package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"fuel-route-service/internal/adapters/cache"
	"fuel-route-service/internal/adapters/maps"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/geo"
	"fuel-route-service/internal/ports"
)

type stubRepo struct {
	stops []domain.FuelStop
	calls int
}

func (r *stubRepo) ListFuelStops(ctx context.Context) ([]domain.FuelStop, error) {
	r.calls++
	return r.stops, nil
}

func testRoute(t *testing.T) domain.Route {
	t.Helper()
	// ~518 miles north along a meridian; distance reported as exactly
	// 500 miles for a round gallon count.
	points := routePoints(30, 16)
	return domain.Route{
		DistanceMeters: 500 * 1609.34,
		Polyline:       geo.EncodePolyline(points),
	}
}

func TestPlanTripTotalCost(t *testing.T) {
	route := testRoute(t)
	geocoder := maps.NewMockGeocoder(map[string]domain.Coordinates{
		"Chicago, IL":   {Lat: 41.8781, Lon: -87.6298},
		"St. Louis, MO": {Lat: 38.6270, Lon: -90.1994},
	})
	directions := &maps.MockDirections{Route: &route}
	repo := &stubRepo{stops: []domain.FuelStop{
		stopAt("A", 31, 3.50),
		stopAt("B", 33, 3.20),
		stopAt("C", 35, 3.80),
	}}

	req := PlanTripRequest{StartPlace: "Chicago, IL", EndPlace: "St. Louis, MO"}
	plan, err := PlanTrip(context.Background(), req, geocoder, directions, repo, DefaultTripConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.Stops) != 1 || plan.Stops[0].Name != "B" {
		t.Fatalf("stops = %v, want single stop B", plan.Stops)
	}

	// 500 miles at 10 mpg is 50 gallons; 50 * 3.20 = 160.
	if math.Abs(plan.TotalCost-160) > 1e-6 {
		t.Fatalf("TotalCost = %v, want 160", plan.TotalCost)
	}

	if plan.Route.Polyline != route.Polyline {
		t.Fatalf("raw route polyline not preserved in the plan")
	}
}

func TestPlanTripRawCoordinatesSkipGeocoding(t *testing.T) {
	route := testRoute(t)
	geocoder := maps.NewMockGeocoder(nil)
	directions := &maps.MockDirections{Route: &route}
	repo := &stubRepo{}

	req := PlanTripRequest{
		StartLat: "41.8781", StartLng: "-87.6298",
		EndLat: "38.6270", EndLng: "-90.1994",
	}
	plan, err := PlanTrip(context.Background(), req, geocoder, directions, repo, DefaultTripConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if geocoder.Calls != 0 {
		t.Fatalf("geocoder called %d times for raw coordinates, want 0", geocoder.Calls)
	}
	if plan.Start.Lat != 41.8781 || plan.End.Lon != -90.1994 {
		t.Fatalf("coordinates not passed through: start=%+v end=%+v", plan.Start, plan.End)
	}
}

func TestPlanTripGeocodeCacheHit(t *testing.T) {
	route := testRoute(t)
	upstream := maps.NewMockGeocoder(map[string]domain.Coordinates{
		"Chicago, IL":   {Lat: 41.8781, Lon: -87.6298},
		"St. Louis, MO": {Lat: 38.6270, Lon: -90.1994},
	})
	geocoder := maps.NewCachedGeocoder(upstream, cache.NewMemoryGeocodeCache())
	directions := &maps.MockDirections{Route: &route}
	repo := &stubRepo{}

	req := PlanTripRequest{StartPlace: "Chicago, IL", EndPlace: "St. Louis, MO"}

	if _, err := PlanTrip(context.Background(), req, geocoder, directions, repo, DefaultTripConfig()); err != nil {
		t.Fatalf("first request: %v", err)
	}
	if upstream.Calls != 2 {
		t.Fatalf("first request made %d upstream calls, want 2", upstream.Calls)
	}

	// Identical place names must be served from the cache.
	if _, err := PlanTrip(context.Background(), req, geocoder, directions, repo, DefaultTripConfig()); err != nil {
		t.Fatalf("second request: %v", err)
	}
	if upstream.Calls != 2 {
		t.Fatalf("second request made %d total upstream calls, want 2", upstream.Calls)
	}
}

func TestPlanTripInvalidLocations(t *testing.T) {
	route := testRoute(t)
	geocoder := maps.NewMockGeocoder(nil)
	directions := &maps.MockDirections{Route: &route}
	repo := &stubRepo{}

	cases := []struct {
		name string
		req  PlanTripRequest
	}{
		{"no input at all", PlanTripRequest{}},
		{"whitespace place", PlanTripRequest{StartPlace: "   ", EndPlace: "St. Louis, MO"}},
		{"unresolvable place", PlanTripRequest{StartPlace: "Nowhere, ZZ", EndPlace: "Elsewhere, ZZ"}},
		{"latitude out of range", PlanTripRequest{StartLat: "95", StartLng: "0", EndLat: "38", EndLng: "-90"}},
	}

	for _, tc := range cases {
		_, err := PlanTrip(context.Background(), tc.req, geocoder, directions, repo, DefaultTripConfig())
		if !errors.Is(err, ErrInvalidLocations) {
			t.Errorf("%s: err = %v, want ErrInvalidLocations", tc.name, err)
		}
	}

	if directions.Calls != 0 {
		t.Fatalf("directions called %d times on invalid locations, want 0", directions.Calls)
	}
}

func TestPlanTripRouteNotFound(t *testing.T) {
	geocoder := maps.NewMockGeocoder(map[string]domain.Coordinates{
		"Chicago, IL":   {Lat: 41.8781, Lon: -87.6298},
		"St. Louis, MO": {Lat: 38.6270, Lon: -90.1994},
	})
	directions := &maps.MockDirections{Route: nil}
	repo := &stubRepo{}

	req := PlanTripRequest{StartPlace: "Chicago, IL", EndPlace: "St. Louis, MO"}
	_, err := PlanTrip(context.Background(), req, geocoder, directions, repo, DefaultTripConfig())
	if !errors.Is(err, ports.ErrRouteNotFound) {
		t.Fatalf("err = %v, want ErrRouteNotFound", err)
	}

	// The planner and catalog must stay untouched when no route exists.
	if repo.calls != 0 {
		t.Fatalf("repository called %d times after route-not-found, want 0", repo.calls)
	}
}

func TestResolveLocationDirectCoordinates(t *testing.T) {
	geocoder := maps.NewMockGeocoder(nil)

	coords, err := ResolveLocation(context.Background(), "41.8781", "-87.6298", "", geocoder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords.Lat != 41.8781 || coords.Lon != -87.6298 {
		t.Fatalf("coords = %+v", coords)
	}
	if geocoder.Calls != 0 {
		t.Fatalf("geocoder called for raw coordinates")
	}

	if _, err := ResolveLocation(context.Background(), "91", "0", "", geocoder); err == nil {
		t.Fatal("latitude 91 accepted")
	}
}
