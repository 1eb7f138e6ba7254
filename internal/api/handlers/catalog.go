package handlers

import (
	"log"
	"net/http"
	"trip-route-service/internal/api/dto"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

// CatalogHandler exposes read-only location and transport mode endpoints.
type CatalogHandler struct {
	Locations ports.LocationRepository
	Modes     ports.ModeRepository
}

func toLocationResponse(name string, lat, lon float64) dto.LocationResponse {
	return dto.LocationResponse{Name: name, Latitude: lat, Longitude: lon}
}

func (h *CatalogHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	origin, err := h.Locations.GetOrigin(ctx)
	if err != nil {
		log.Printf("req_id=%s get origin failed: %v", obs.RequestID(ctx), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	dests, err := h.Locations.ListDestinations(ctx)
	if err != nil {
		log.Printf("req_id=%s list destinations failed: %v", obs.RequestID(ctx), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListLocationsResponse{
		Origin:       toLocationResponse(origin.Name, origin.Latitude, origin.Longitude),
		Destinations: make([]dto.LocationResponse, 0, len(dests)),
	}
	for _, d := range dests {
		res.Destinations = append(res.Destinations, toLocationResponse(d.Name, d.Latitude, d.Longitude))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *CatalogHandler) ListModes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	modes, err := h.Modes.ListModes(ctx)
	if err != nil {
		log.Printf("req_id=%s list modes failed: %v", obs.RequestID(ctx), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListModesResponse{Modes: make([]dto.ModeResponse, 0, len(modes))}
	for _, m := range modes {
		if err := m.Validate(); err != nil {
			log.Printf("req_id=%s invalid mode in catalog: %v", obs.RequestID(ctx), err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		res.Modes = append(res.Modes, dto.ModeResponse{
			Mode:            m.Name,
			SpeedKmh:        *m.SpeedKmh,
			CostPerKm:       *m.CostPerKm,
			TransferTimeMin: *m.TransferTimeMin,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
