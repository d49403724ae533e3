package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createFuelStopsQuery := `
	CREATE TABLE IF NOT EXISTS fuel_stops (
		opis_truckstop_id INTEGER PRIMARY KEY,
		truckstop_name TEXT NOT NULL,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		state TEXT NOT NULL,
		rack_id INTEGER,
		retail_price REAL NOT NULL,
		latitude REAL,
		longitude REAL
	);
	`

	createStateIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_fuel_stops_state
    ON fuel_stops(state);
	`

	statements := []string{
		createFuelStopsQuery,
		createStateIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type FuelStopSeed struct {
	OpisTruckstopID int      `json:"opis_truckstop_id"`
	TruckstopName   string   `json:"truckstop_name"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	RackID          int      `json:"rack_id"`
	RetailPrice     float64  `json:"retail_price"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

// Populate the database with fuel-price data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed fuel stops: read %q: %w", jsonPath, err)
	}

	var data []FuelStopSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed fuel stops: parse json: %w", err)
	}

	for i, item := range data {
		if item.OpisTruckstopID <= 0 {
			return fmt.Errorf("seed fuel stops: invalid opis_truckstop_id at index %d: %d", i+1, item.OpisTruckstopID)
		}
		if strings.TrimSpace(item.TruckstopName) == "" {
			return fmt.Errorf("seed fuel stops: item at index %d: truckstop_name cannot be empty", i+1)
		}
		if item.RetailPrice < 0 {
			return fmt.Errorf("seed fuel stops: item at index %d: retail_price cannot be negative", i+1)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed fuel stops: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO fuel_stops (
		opis_truckstop_id,
		truckstop_name,
		address,
		city,
		state,
		rack_id,
		retail_price,
		latitude,
		longitude
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed fuel stops: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range data {
		if _, err := stmt.Exec(
			s.OpisTruckstopID, s.TruckstopName, s.Address, s.City, s.State,
			s.RackID, s.RetailPrice, s.Latitude, s.Longitude,
		); err != nil {
			return fmt.Errorf("seed fuel stops: insert opis_truckstop_id=%d: %w", s.OpisTruckstopID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed fuel stops: commit tx: %w", err)
	}

	return nil
}
