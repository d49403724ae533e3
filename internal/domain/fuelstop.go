package domain

// Represents a single truckstop from the fuel-price catalog.
// Catalog records are read-only to the planner; multiple stops may
// share a location or a price.
type FuelStop struct {
	Name        string
	Address     string
	City        string
	State       string
	Price       float64
	Coordinates Coordinates
}

// A FuelStop chosen for one route segment, snapshotted together with
// the minimum price observed in that segment at selection time.
type SelectedStop struct {
	Name        string
	Address     string
	City        string
	State       string
	Price       float64
	Coordinates Coordinates
}
