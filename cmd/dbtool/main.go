package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"fuel-route-service/internal/adapters/cache"
	"fuel-route-service/internal/adapters/maps"
	"fuel-route-service/internal/adapters/repositories"
	"fuel-route-service/internal/config"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/db"
	"fuel-route-service/internal/ports"
)

// dbtool imports the OPIS fuel-price CSV into Postgres, geocoding each
// truckstop address on the way in. Already-resolved addresses are served
// from the persistent geocode cache, so interrupted imports resume
// cheaply.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	apiKey := os.Getenv("GOOGLE_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Fatal("GOOGLE_API_KEY is required")
	}

	csvPath := config.Get("FUEL_PRICES_CSV", "data/fuel-prices.csv")

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx := context.Background()

	repo := repositories.NewPgFuelStopRepository(conn)
	if err := repo.InitSchema(ctx); err != nil {
		log.Fatal(err)
	}

	geocodeCache := cache.NewPgGeocodeCache(conn)
	if err := geocodeCache.InitSchema(ctx); err != nil {
		log.Fatal(err)
	}

	inner, err := maps.NewGoogleGeocoder(apiKey)
	if err != nil {
		log.Fatal(err)
	}
	geocoder := maps.NewCachedGeocoder(inner, geocodeCache)

	records, skipped, err := importCSV(ctx, csvPath, geocoder)
	if err != nil {
		log.Fatal(err)
	}

	if err := repo.UpsertMany(ctx, records); err != nil {
		log.Fatal(err)
	}

	log.Printf("import complete: imported=%d skipped=%d", len(records), skipped)
}

// importCSV reads the OPIS CSV and geocodes each row. Rows whose full
// address and city/state fallback both fail to resolve are skipped with
// a log line; the rest of the import proceeds.
func importCSV(ctx context.Context, csvPath string, geocoder ports.Geocoder) ([]repositories.FuelStopRecord, int, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, 0, fmt.Errorf("import csv: open %q: %w", csvPath, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("import csv: read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"OPIS Truckstop ID", "Truckstop Name", "Address", "City", "State", "Retail Price"} {
		if _, ok := col[required]; !ok {
			return nil, 0, fmt.Errorf("import csv: missing column %q", required)
		}
	}

	records := make([]repositories.FuelStopRecord, 0, 1024)
	skipped := 0

	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("import csv: line %d: %w", line, err)
		}

		field := func(name string) string { return strings.TrimSpace(row[col[name]]) }

		opisID, err := strconv.Atoi(field("OPIS Truckstop ID"))
		if err != nil {
			return nil, 0, fmt.Errorf("import csv: line %d: invalid OPIS Truckstop ID: %w", line, err)
		}

		rackID := 0
		if i, ok := col["Rack ID"]; ok {
			rackID, _ = strconv.Atoi(strings.TrimSpace(row[i]))
		}

		price, err := strconv.ParseFloat(field("Retail Price"), 64)
		if err != nil {
			return nil, 0, fmt.Errorf("import csv: line %d: invalid Retail Price: %w", line, err)
		}

		city := field("City")
		state := field("State")
		address := field("Address")

		coords, err := resolveStopAddress(ctx, geocoder, address, city, state)
		if err != nil {
			log.Printf("skipping opis_truckstop_id=%d: %v", opisID, err)
			skipped++
			continue
		}

		records = append(records, repositories.FuelStopRecord{
			OpisTruckstopID: opisID,
			RackID:          rackID,
			Stop: domain.FuelStop{
				Name:        field("Truckstop Name"),
				Address:     address,
				City:        city,
				State:       state,
				Price:       price,
				Coordinates: coords,
			},
		})
	}

	return records, skipped, nil
}

// Try the full street address first, then fall back to city/state, which
// resolves rows whose street address the geocoder does not recognize.
func resolveStopAddress(ctx context.Context, geocoder ports.Geocoder, address, city, state string) (domain.Coordinates, error) {
	full := fmt.Sprintf("%s, %s, %s", address, city, state)
	coords, err := geocoder.Geocode(ctx, full)
	if err == nil {
		return coords, nil
	}

	fallback := fmt.Sprintf("%s, %s", city, state)
	coords, fbErr := geocoder.Geocode(ctx, fallback)
	if fbErr != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %v; fallback %q: %w", full, err, fallback, fbErr)
	}

	return coords, nil
}
