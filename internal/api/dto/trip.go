package dto

type SelectedStopResponse struct {
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	State       string     `json:"state"`
	Price       float64    `json:"price"`
	Coordinates [2]float64 `json:"coordinates"`
}

type RouteResponse struct {
	DistanceMeters float64 `json:"distance_meters"`
	Polyline       string  `json:"polyline"`
}

type TripPlanResponse struct {
	StartCoordinates [2]float64             `json:"start_coordinates"`
	EndCoordinates   [2]float64             `json:"end_coordinates"`
	FuelStops        []SelectedStopResponse `json:"fuel_stops"`
	TotalCost        float64                `json:"total_cost"`
	Route            RouteResponse          `json:"route"`
}

type FuelStopResponse struct {
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	State       string     `json:"state"`
	Price       float64    `json:"price"`
	Coordinates [2]float64 `json:"coordinates"`
}

type ListFuelStopsResponse struct {
	FuelStops []FuelStopResponse `json:"fuel_stops"`
}
