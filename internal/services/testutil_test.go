package services

import (
	"fmt"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

// staticDistances is a DistanceLookup over a fixed symmetric table.
type staticDistances map[[2]string]float64

func (s staticDistances) set(a, b string, km float64) staticDistances {
	s[[2]string{a, b}] = km
	s[[2]string{b, a}] = km
	return s
}

func (s staticDistances) Distance(a, b string) (float64, error) {
	if a == b {
		return 0, nil
	}
	km, ok := s[[2]string{a, b}]
	if !ok {
		return 0, fmt.Errorf("static %q -> %q: %w", a, b, domain.ErrNotFound)
	}
	return km, nil
}

func catalog() []domain.TransportMode {
	return []domain.TransportMode{
		domain.NewTransportMode("Bus", 40, 2, 5),
		domain.NewTransportMode("Train", 80, 5, 2),
		domain.NewTransportMode("Walking", 5, 0, 0),
		domain.NewTransportMode("Bicycle", 15, 0, 1),
	}
}

func modeNames(it domain.Itinerary) []string {
	out := make([]string, 0, len(it.Legs))
	for _, l := range it.Legs {
		out = append(out, l.Selected.Mode)
	}
	return out
}

func countingProvider(calls *int, inner ports.DistanceProvider) ports.DistanceFunc {
	return func(a, b domain.Coordinates) (float64, error) {
		*calls++
		return inner.DistanceKm(a, b)
	}
}
