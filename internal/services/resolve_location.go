package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
)

// ResolveLocation turns raw request input into coordinates.
//
// When both latStr and lngStr parse as numbers they are returned
// directly after range validation, with no cache or network interaction.
// Otherwise a non-blank place name is geocoded. Anything else fails.
func ResolveLocation(ctx context.Context, latStr, lngStr, place string, geocoder ports.Geocoder) (domain.Coordinates, error) {
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr == nil && lngErr == nil {
			coords := domain.Coordinates{Lat: lat, Lon: lng}
			if err := coords.Validate(); err != nil {
				return domain.Coordinates{}, fmt.Errorf("resolve location: %w", err)
			}
			return coords, nil
		}
	}

	place = strings.TrimSpace(place)
	if place == "" {
		return domain.Coordinates{}, fmt.Errorf("resolve location: %w", ports.ErrNoGeocodeResult)
	}

	coords, err := geocoder.Geocode(ctx, place)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("resolve location %q: %w", place, err)
	}

	return coords, nil
}
