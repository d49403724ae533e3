package domain

// A driving route returned by the directions provider.
// The polyline is the provider's encoded overview geometry and is kept
// verbatim for client-side map rendering.
type Route struct {
	DistanceMeters float64
	Polyline       string
}

// Represents the planned fuel purchasing for a single trip.
// A TripPlan is the output of the route-cost planner and describes the
// selected stops in route order along with the total estimated fuel cost.
// It is immutable planning data and contains no side effects.
type TripPlan struct {
	Start     Coordinates
	End       Coordinates
	Stops     []SelectedStop
	TotalCost float64
	Route     Route
}
