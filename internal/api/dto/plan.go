package dto

import (
	"math"
	"trip-route-service/internal/domain"
)

type PlanRequest struct {
	Criterion string `json:"criterion"`
	// Destinations restricts the trip to these names. Empty means all.
	Destinations []string `json:"destinations"`
}

// Numbers that may be +Inf (an unreachable leg) are pointers and encode as
// null, since JSON has no infinity.
type LegResponse struct {
	From            string   `json:"from"`
	To              string   `json:"to"`
	DistanceKm      *float64 `json:"distance_km"`
	Mode            string   `json:"mode"`
	TravelTimeMin   *float64 `json:"travel_time_min"`
	TransferTimeMin float64  `json:"transfer_time_min"`
	TotalTimeMin    *float64 `json:"total_time_min"`
	Cost            *float64 `json:"cost"`
}

type AlternativeResponse struct {
	Rank            int           `json:"rank"`
	TotalDistanceKm *float64      `json:"total_distance_km"`
	TotalTimeMin    *float64      `json:"total_time_min"`
	TotalCost       *float64      `json:"total_cost"`
	ModeChanges     int           `json:"mode_changes"`
	Legs            []LegResponse `json:"legs"`
}

type UnavailablePairResponse struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Error string `json:"error"`
}

type PlanResponse struct {
	Criterion      string                    `json:"criterion"`
	Path           []string                  `json:"path"`
	PathDistanceKm *float64                  `json:"path_distance_km"`
	Alternatives   []AlternativeResponse     `json:"alternatives"`
	Unavailable    []UnavailablePairResponse `json:"unavailable"`
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func NewPlanResponse(plan *domain.TripPlan) PlanResponse {
	res := PlanResponse{
		Criterion:      string(plan.Criterion),
		Path:           plan.Path.Stops,
		PathDistanceKm: finite(plan.Path.TotalDistanceKm),
		Alternatives:   make([]AlternativeResponse, 0, len(plan.Alternatives)),
		Unavailable:    make([]UnavailablePairResponse, 0, len(plan.Unavailable)),
	}
	if res.Path == nil {
		res.Path = []string{}
	}

	for i, it := range plan.Alternatives {
		legs := make([]LegResponse, 0, len(it.Legs))
		for _, l := range it.Legs {
			legs = append(legs, LegResponse{
				From:            l.From,
				To:              l.To,
				DistanceKm:      finite(l.DistanceKm),
				Mode:            l.Selected.Mode,
				TravelTimeMin:   finite(l.Selected.TravelTimeMin),
				TransferTimeMin: l.Selected.TransferTimeMin,
				TotalTimeMin:    finite(l.Selected.TotalTimeMin),
				Cost:            finite(l.Selected.Cost),
			})
		}

		res.Alternatives = append(res.Alternatives, AlternativeResponse{
			Rank:            i + 1,
			TotalDistanceKm: finite(it.TotalDistanceKm()),
			TotalTimeMin:    finite(it.TotalTimeMin()),
			TotalCost:       finite(it.TotalCost()),
			ModeChanges:     it.ModeChanges(),
			Legs:            legs,
		})
	}

	for _, f := range plan.Unavailable {
		res.Unavailable = append(res.Unavailable, UnavailablePairResponse{A: f.A, B: f.B, Error: f.Err.Error()})
	}

	return res
}
