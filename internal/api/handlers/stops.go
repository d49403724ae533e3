package handlers

import (
	"log"
	"net/http"

	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/ports"
)

// StopHandler exposes read-only fuel-stop catalog endpoints.
type StopHandler struct {
	Repo ports.FuelStopRepository
}

func (h *StopHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	stops, err := h.Repo.ListFuelStops(r.Context())
	if err != nil {
		log.Printf("list fuel stops failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListFuelStopsResponse{
		FuelStops: make([]dto.FuelStopResponse, 0, len(stops)),
	}
	for _, s := range stops {
		res.FuelStops = append(res.FuelStops, dto.FuelStopResponse{
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
