package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"trip-route-service/internal/api/dto"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
	"trip-route-service/internal/services"
)

type PlanHandler struct {
	Locations       ports.LocationRepository
	Modes           ports.ModeRepository
	Provider        ports.DistanceProvider
	BalancedWeights []domain.WeightPair
	MaxDestinations int
}

// Plan loads the catalog, selects the requested destinations and returns
// the optimal visiting order with up to three itineraries.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if strings.TrimSpace(req.Criterion) == "" {
		writeError(w, r, http.StatusBadRequest, "criterion is required")
		return
	}
	criterion, err := domain.ParseCriterion(req.Criterion)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "criterion must be one of least_time, least_cost, balanced")
		return
	}

	origin, err := h.Locations.GetOrigin(ctx)
	if err != nil {
		log.Printf("req_id=%s get origin failed: %v", obs.RequestID(ctx), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	all, err := h.Locations.ListDestinations(ctx)
	if err != nil {
		log.Printf("req_id=%s list destinations failed: %v", obs.RequestID(ctx), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	modes, err := h.Modes.ListModes(ctx)
	if err != nil {
		log.Printf("req_id=%s list modes failed: %v", obs.RequestID(ctx), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	dests, err := selectDestinations(all, req.Destinations)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	svcReq := services.PlanTripRequest{
		Origin:          origin,
		Destinations:    dests,
		Modes:           modes,
		Criterion:       criterion,
		BalancedWeights: h.BalancedWeights,
		MaxDestinations: h.MaxDestinations,
	}

	plan, err := services.PlanTrip(ctx, svcReq, h.Provider)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvalidCriterion):
		writeError(w, r, http.StatusBadRequest, "invalid criterion")
		return
	case errors.Is(err, domain.ErrTooManyDestinations):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	default:
		log.Printf("req_id=%s plan trip failed: %v", obs.RequestID(ctx), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewPlanResponse(plan))
}

// selectDestinations returns the named subset of all, in request order.
// No names selects every destination.
func selectDestinations(all []domain.Location, names []string) ([]domain.Location, error) {
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]domain.Location, len(all))
	for _, d := range all {
		byName[d.Name] = d
	}

	out := make([]domain.Location, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		d, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("unknown destination %q", n)
		}
		if _, dup := seen[n]; dup {
			return nil, fmt.Errorf("destination %q listed twice", n)
		}
		seen[n] = struct{}{}
		out = append(out, d)
	}

	return out, nil
}
