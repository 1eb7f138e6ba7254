package services

import (
	"fmt"
	"math"
	"trip-route-service/internal/domain"
)

// EvaluateModes computes travel, transfer and total time and cost of every
// catalog mode over one leg, preserving catalog order.
//
// A leg's alternative set must be complete, so one malformed mode fails the
// whole evaluation and no partial result is returned.
func EvaluateModes(distanceKm float64, modes []domain.TransportMode) ([]domain.LegEvaluation, error) {
	if math.IsNaN(distanceKm) || distanceKm < 0 {
		return nil, fmt.Errorf("evaluate modes: %w: distance %v km", domain.ErrInvalidField, distanceKm)
	}

	evals := make([]domain.LegEvaluation, 0, len(modes))
	for _, mode := range modes {
		if err := mode.Validate(); err != nil {
			return nil, fmt.Errorf("evaluate modes: %w", err)
		}

		travel := distanceKm / *mode.SpeedKmh * 60
		transfer := *mode.TransferTimeMin

		// A free mode stays free on an unreachable (+Inf) leg.
		cost := 0.0
		if *mode.CostPerKm != 0 {
			cost = distanceKm * *mode.CostPerKm
		}

		evals = append(evals, domain.LegEvaluation{
			Mode:            mode.Name,
			TravelTimeMin:   travel,
			TransferTimeMin: transfer,
			TotalTimeMin:    travel + transfer,
			Cost:            cost,
		})
	}

	return evals, nil
}
