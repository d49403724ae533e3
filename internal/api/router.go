package api

import (
	"net/http"

	"fuel-route-service/internal/api/handlers"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	geocoder ports.Geocoder,
	directions ports.DirectionsProvider,
	repo ports.FuelStopRepository,
	cfg services.TripConfig,
) http.Handler {
	mux := http.NewServeMux()

	stopHandler := &handlers.StopHandler{Repo: repo}
	routeHandler := &handlers.RouteHandler{
		Geocoder:   geocoder,
		Directions: directions,
		Repo:       repo,
		Config:     cfg,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/stops", stopHandler.List)
	mux.HandleFunc("/route", routeHandler.Route)

	return loggingMiddleware(mux)
}
