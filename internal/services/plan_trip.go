package services

import (
	"context"
	"errors"
	"fmt"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/geo"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"
)

// Either coordinate pair per endpoint must be resolvable; surfaced to
// callers as an "invalid locations provided" failure.
var ErrInvalidLocations = errors.New("plan trip: invalid locations")

// Raw request input: numeric coordinate strings or free-text place
// names, one complete pair per endpoint.
type PlanTripRequest struct {
	StartLat   string
	StartLng   string
	StartPlace string
	EndLat     string
	EndLng     string
	EndPlace   string
}

// Trip-level planning parameters.
type TripConfig struct {
	Select            SelectOptions
	FuelEfficiencyMPG float64
}

func DefaultTripConfig() TripConfig {
	return TripConfig{
		Select:            DefaultSelectOptions(),
		FuelEfficiencyMPG: 10,
	}
}

// PlanTrip orchestrates a full request: endpoint resolution, one
// directions call, polyline decoding, fuel-stop selection, and total
// cost computation.
//
// No retries happen at this layer; the HTTP client behind the providers
// owns bounded retry of transient transport failures. A definitive
// empty result (unresolvable place, no route) fails the request
// immediately and never invokes the planner.
func PlanTrip(
	ctx context.Context,
	req PlanTripRequest,
	geocoder ports.Geocoder,
	directions ports.DirectionsProvider,
	repo ports.FuelStopRepository,
	cfg TripConfig,
) (_ *domain.TripPlan, err error) {
	defer obs.Time(ctx, "services.PlanTrip")(&err)

	start, err := ResolveLocation(ctx, req.StartLat, req.StartLng, req.StartPlace, geocoder)
	if err != nil {
		return nil, fmt.Errorf("%w: start: %v", ErrInvalidLocations, err)
	}

	end, err := ResolveLocation(ctx, req.EndLat, req.EndLng, req.EndPlace, geocoder)
	if err != nil {
		return nil, fmt.Errorf("%w: end: %v", ErrInvalidLocations, err)
	}

	route, err := directions.GetRoute(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("plan trip: get route: %w", err)
	}

	points, err := geo.DecodePolyline(route.Polyline)
	if err != nil {
		// A malformed polyline from a well-formed directions response
		// should not occur; fail the request rather than partially decode.
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	stops, err := repo.ListFuelStops(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan trip: list fuel stops: %w", err)
	}

	selected := SelectFuelStops(points, stops, cfg.Select)

	// Cost model: each selected stop fills the tank for the whole trip's
	// gallon estimate at its price.
	gallons := geo.MetersToMiles(route.DistanceMeters) / cfg.FuelEfficiencyMPG
	totalCost := 0.0
	for _, s := range selected {
		totalCost += s.Price * gallons
	}

	return &domain.TripPlan{
		Start:     start,
		End:       end,
		Stops:     selected,
		TotalCost: totalCost,
		Route:     route,
	}, nil
}
