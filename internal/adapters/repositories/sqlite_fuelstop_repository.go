package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fuel-route-service/internal/domain"
)

// SQLite-backed implementation of the FuelStopRepository port.
type SqliteFuelStopRepository struct{ DB *sql.DB }

func NewSqliteFuelStopRepository(db *sql.DB) *SqliteFuelStopRepository {
	return &SqliteFuelStopRepository{DB: db}
}

// Return all fuel stops with valid coordinates, ordered by truckstop id.
// Records that were never geocoded are excluded; the planner cannot use
// a stop it cannot locate.
func (s *SqliteFuelStopRepository) ListFuelStops(ctx context.Context) ([]domain.FuelStop, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite fuel stop repository: DB is nil")
	}

	query := `
	SELECT
		truckstop_name,
		address,
		city,
		state,
		retail_price,
		latitude,
		longitude
	FROM fuel_stops
	WHERE latitude IS NOT NULL
		AND longitude IS NOT NULL
	ORDER BY opis_truckstop_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list fuel stops: query fuel_stops table: %w", err)
	}
	defer rows.Close()

	stops := make([]domain.FuelStop, 0, 512)
	for rows.Next() {
		var stop domain.FuelStop
		err := rows.Scan(
			&stop.Name, &stop.Address, &stop.City, &stop.State,
			&stop.Price, &stop.Coordinates.Lat, &stop.Coordinates.Lon,
		)
		if err != nil {
			return nil, fmt.Errorf("list fuel stops: scan row: %w", err)
		}
		stops = append(stops, stop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list fuel stops: row iteration: %w", err)
	}

	return stops, nil
}
