package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"fuel-route-service/internal/domain"
)

// Postgres-backed fuel-stop store used by the import tool. Rows carry
// the OPIS identifiers from the source CSV so re-imports upsert instead
// of duplicating.
type PgFuelStopRepository struct{ DB *sql.DB }

func NewPgFuelStopRepository(db *sql.DB) *PgFuelStopRepository {
	return &PgFuelStopRepository{DB: db}
}

// A catalog row together with its CSV identifiers.
type FuelStopRecord struct {
	OpisTruckstopID int
	RackID          int
	Stop            domain.FuelStop
}

// InitSchema creates the fuel_stops table when missing.
func (r *PgFuelStopRepository) InitSchema(ctx context.Context) error {
	if r.DB == nil {
		return errors.New("pg fuel stop repository: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS fuel_stops (
		opis_truckstop_id INTEGER PRIMARY KEY,
		truckstop_name TEXT NOT NULL,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		rack_id INTEGER,
		retail_price NUMERIC(6,3) NOT NULL,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION
	);
	`
	if _, err := r.DB.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("init fuel_stops schema: %w", err)
	}

	return nil
}

// Upsert a batch of imported records in a single transaction.
func (r *PgFuelStopRepository) UpsertMany(ctx context.Context, records []FuelStopRecord) error {
	if r.DB == nil {
		return errors.New("pg fuel stop repository: DB is nil")
	}

	if len(records) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("upsert fuel stops: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO fuel_stops (
		opis_truckstop_id, truckstop_name, address, city, state,
		rack_id, retail_price, latitude, longitude
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (opis_truckstop_id) DO UPDATE
	SET truckstop_name = EXCLUDED.truckstop_name,
		address = EXCLUDED.address,
		city = EXCLUDED.city,
		state = EXCLUDED.state,
		rack_id = EXCLUDED.rack_id,
		retail_price = EXCLUDED.retail_price,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude;
	`)
	if err != nil {
		return fmt.Errorf("upsert fuel stops: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if strings.TrimSpace(rec.Stop.Name) == "" {
			return fmt.Errorf("upsert fuel stops: opis_truckstop_id=%d: empty truckstop name", rec.OpisTruckstopID)
		}

		if _, err := stmt.ExecContext(ctx,
			rec.OpisTruckstopID, rec.Stop.Name, rec.Stop.Address, rec.Stop.City, rec.Stop.State,
			rec.RackID, rec.Stop.Price, rec.Stop.Coordinates.Lat, rec.Stop.Coordinates.Lon,
		); err != nil {
			return fmt.Errorf("upsert fuel stops: opis_truckstop_id=%d: %w", rec.OpisTruckstopID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("upsert fuel stops: commit: %w", err)
	}

	return nil
}

// Return all fuel stops with valid coordinates, ordered by truckstop id.
func (r *PgFuelStopRepository) ListFuelStops(ctx context.Context) ([]domain.FuelStop, error) {
	if r.DB == nil {
		return nil, errors.New("pg fuel stop repository: DB is nil")
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
	rows, err := r.DB.QueryContext(ctx, query)
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
