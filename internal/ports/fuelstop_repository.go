package ports

import (
	"context"

	"fuel-route-service/internal/domain"
)

// Port: a boundary for retrieving the fuel-stop catalog from a data source.
type FuelStopRepository interface {
	// Retrieve all fuel stops that carry valid coordinates, in stable
	// catalog order.
	ListFuelStops(ctx context.Context) ([]domain.FuelStop, error)
}
