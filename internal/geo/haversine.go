package geo

import (
	"math"

	"fuel-route-service/internal/domain"
)

// Earth radius in miles; all route math in this service is mile-based.
const earthRadiusMiles = 3956

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance computes the great-circle distance in miles between two points
// using the haversine formula.
//
// The function is pure and performs no input validation: NaN or
// out-of-range coordinates propagate NaN into the result.
func Distance(a, b domain.Coordinates) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}

// IsNearRoute reports whether stop lies within thresholdMiles of at least
// one route point. A distance exactly equal to the threshold counts as near.
// Short-circuits on the first match; O(len(route)) per call.
func IsNearRoute(stop domain.Coordinates, route []domain.Coordinates, thresholdMiles float64) bool {
	for _, p := range route {
		if Distance(stop, p) <= thresholdMiles {
			return true
		}
	}
	return false
}

// MetersToMiles converts a distance reported by the directions provider
// (meters) into miles.
func MetersToMiles(meters float64) float64 {
	return meters / 1609.34
}
