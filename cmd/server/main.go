package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"fuel-route-service/internal/adapters/cache"
	"fuel-route-service/internal/adapters/maps"
	"fuel-route-service/internal/adapters/repositories"
	"fuel-route-service/internal/api"
	"fuel-route-service/internal/config"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Google Maps, geocode cache)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/fuel_prices.json")
	port := config.Get("PORT", "8080")

	apiKey := os.Getenv("GOOGLE_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Fatal("GOOGLE_API_KEY is required")
	}

	tripConfig := services.TripConfig{
		Select: services.SelectOptions{
			ThresholdMiles: config.GetFloat("PROXIMITY_MILES", 1),
			IntervalMiles:  config.GetFloat("SEGMENT_INTERVAL_MILES", 500),
			FlushTrailing:  config.GetBool("FLUSH_TRAILING_SEGMENT", true),
		},
		FuelEfficiencyMPG: config.GetFloat("FUEL_EFFICIENCY_MPG", 10),
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed catalog data on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	geocoder, err := maps.NewGoogleGeocoder(apiKey)
	if err != nil {
		log.Fatal(err)
	}
	directions, err := maps.NewGoogleDirections(apiKey)
	if err != nil {
		log.Fatal(err)
	}

	// Geocode results are memoized so repeated place names skip the
	// external service. Redis serves multi-instance deployments; the
	// in-process map is the default.
	var geocodeCache ports.GeocodeCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		geocodeCache = cache.NewRedisGeocodeCache(client, 0)
		log.Printf("geocode cache backend=redis addr=%s", addr)
	} else {
		geocodeCache = cache.NewMemoryGeocodeCache()
		log.Printf("geocode cache backend=memory")
	}

	cachedGeocoder := maps.NewCachedGeocoder(geocoder, geocodeCache)
	repo := repositories.NewSqliteFuelStopRepository(db)
	router := api.NewRouter(cachedGeocoder, directions, repo, tripConfig)

	// Timeouts cover external directions/geocoding latency on cold cache.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	// Seeding is optional; a deployment fed by dbtool ships no JSON file.
	if _, err := os.Stat(seedPath); os.IsNotExist(err) {
		log.Printf("seed file %q not found, skipping seeding", seedPath)
		return nil
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
