package handlers

import (
	"errors"
	"log"
	"net/http"

	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"
)

type RouteHandler struct {
	Geocoder   ports.Geocoder
	Directions ports.DirectionsProvider
	Repo       ports.FuelStopRepository
	Config     services.TripConfig
}

// Route orchestrates a fuel-route query: endpoint resolution, directions
// lookup, and cheapest-stop selection per segment.
func (h *RouteHandler) Route(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	req := services.PlanTripRequest{
		StartLat:   q.Get("start_lat"),
		StartLng:   q.Get("start_lng"),
		StartPlace: q.Get("start_place"),
		EndLat:     q.Get("end_lat"),
		EndLng:     q.Get("end_lng"),
		EndPlace:   q.Get("end_place"),
	}

	plan, err := services.PlanTrip(r.Context(), req, h.Geocoder, h.Directions, h.Repo, h.Config)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidLocations):
			writeError(w, r, http.StatusBadRequest, "invalid locations provided")
		case errors.Is(err, ports.ErrRouteNotFound):
			writeError(w, r, http.StatusNotFound, "route not found")
		default:
			log.Printf("plan trip failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	res := dto.TripPlanResponse{
		StartCoordinates: plan.Start.LatLng(),
		EndCoordinates:   plan.End.LatLng(),
		FuelStops:        make([]dto.SelectedStopResponse, 0, len(plan.Stops)),
		TotalCost:        plan.TotalCost,
		Route: dto.RouteResponse{
			DistanceMeters: plan.Route.DistanceMeters,
			Polyline:       plan.Route.Polyline,
		},
	}
	for _, s := range plan.Stops {
		res.FuelStops = append(res.FuelStops, dto.SelectedStopResponse{
			Name:        s.Name,
			Address:     s.Address,
			City:        s.City,
			State:       s.State,
			Price:       s.Price,
			Coordinates: s.Coordinates.LatLng(),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
