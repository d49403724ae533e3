package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"
)

const defaultBaseURL = "https://maps.googleapis.com"

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			Distance struct {
				Value float64 `json:"value"`
			} `json:"distance"`
		} `json:"legs"`
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
	} `json:"routes"`
}

// GoogleDirections implements DirectionsProvider using the Google
// Directions API. One request per GetRoute call; transient transport
// failures are retried by the shared client, definitive empty results
// (ZERO_RESULTS, no routes) surface as ErrRouteNotFound.
//
// The provider is safe for concurrent use.
type GoogleDirections struct {
	client *googleClient
}

func NewGoogleDirections(apiKey string) (*GoogleDirections, error) {
	if apiKey == "" {
		return nil, errors.New("google directions: api key is empty")
	}
	return &GoogleDirections{client: newGoogleClient(apiKey, defaultBaseURL)}, nil
}

// Return the total distance and overview polyline of the best route.
func (g *GoogleDirections) GetRoute(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (_ domain.Route, err error) {
	defer obs.Time(ctx, "google.GetRoute")(&err)

	params := url.Values{}
	params.Set("origin", fmt.Sprintf("%f,%f", origin.Lat, origin.Lon))
	params.Set("destination", fmt.Sprintf("%f,%f", destination.Lat, destination.Lon))
	params.Set("mode", "driving")

	resp, err := g.client.doWithRetry(ctx, func() (*http.Request, error) {
		return g.client.newRequest(ctx, "/maps/api/directions/json", params)
	})
	if err != nil {
		return domain.Route{}, fmt.Errorf("directions request: %w", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Route{}, fmt.Errorf("decode directions response: %w", err)
	}

	switch decoded.Status {
	case "OK":
	case "ZERO_RESULTS", "NOT_FOUND":
		return domain.Route{}, ports.ErrRouteNotFound
	default:
		return domain.Route{}, fmt.Errorf("directions status %q", decoded.Status)
	}

	if len(decoded.Routes) == 0 {
		return domain.Route{}, ports.ErrRouteNotFound
	}

	best := decoded.Routes[0]
	meters := 0.0
	for _, leg := range best.Legs {
		meters += leg.Distance.Value
	}

	return domain.Route{
		DistanceMeters: meters,
		Polyline:       best.OverviewPolyline.Points,
	}, nil
}
