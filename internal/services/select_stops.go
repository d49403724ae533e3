package services

import (
	"math"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/geo"
)

// Segmentation parameters for fuel-stop selection. The zero value is not
// usable; call DefaultSelectOptions or fill every field.
type SelectOptions struct {
	// Maximum distance in miles between a stop and a route point for the
	// stop to count as on the route.
	ThresholdMiles float64
	// Cumulative route distance in miles that closes a segment.
	IntervalMiles float64
	// Emit the final segment even when it never reached IntervalMiles,
	// provided it holds a candidate stop.
	FlushTrailing bool
}

func DefaultSelectOptions() SelectOptions {
	return SelectOptions{
		ThresholdMiles: 1,
		IntervalMiles:  500,
		FlushTrailing:  true,
	}
}

// SelectFuelStops picks the cheapest eligible fuel stop per fixed-length
// route segment.
//
// Walking the route points in traversal order, cumulative great-circle
// distance is accumulated per consecutive pair. At each point the stops
// within ThresholdMiles are scanned; a strictly lower price replaces the
// segment's running best, so the first catalog-order stop at the minimum
// price wins ties. Once a segment's distance reaches IntervalMiles and a
// best stop exists, it is emitted and the accumulator resets. Segments
// with no eligible stop emit nothing.
//
// Deterministic: identical inputs produce identical selections. A
// single-point route yields no segments.
func SelectFuelStops(points []domain.Coordinates, stops []domain.FuelStop, opts SelectOptions) []domain.SelectedStop {
	selected := []domain.SelectedStop{}
	if len(points) == 0 || len(stops) == 0 {
		return selected
	}

	coords := make([]domain.Coordinates, len(stops))
	for i, s := range stops {
		coords[i] = s.Coordinates
	}
	index := geo.NewStopIndex(coords, opts.ThresholdMiles)

	segmentDistance := 0.0
	minPrice := math.Inf(1)
	var best *domain.FuelStop

	for i, point := range points {
		if i > 0 {
			segmentDistance += geo.Distance(points[i-1], point)
		}

		// Candidates arrive in ascending catalog order, preserving the
		// first-at-minimum-price tie-break of a full catalog scan.
		for _, ci := range index.Near(point) {
			if stops[ci].Price < minPrice {
				minPrice = stops[ci].Price
				best = &stops[ci]
			}
		}

		if segmentDistance >= opts.IntervalMiles && best != nil {
			selected = append(selected, snapshot(best, minPrice))
			segmentDistance = 0
			minPrice = math.Inf(1)
			best = nil
		}
	}

	// Trailing partial segment: emitted or dropped per configuration.
	if opts.FlushTrailing && best != nil {
		selected = append(selected, snapshot(best, minPrice))
	}

	return selected
}

func snapshot(stop *domain.FuelStop, price float64) domain.SelectedStop {
	return domain.SelectedStop{
		Name:        stop.Name,
		Address:     stop.Address,
		City:        stop.City,
		State:       stop.State,
		Price:       price,
		Coordinates: stop.Coordinates,
	}
}
