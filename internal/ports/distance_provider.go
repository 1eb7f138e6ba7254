package ports

import "trip-route-service/internal/domain"

// Contract for the great-circle distance primitive.
// Implementations must be pure: the same pair always yields the same result.
type DistanceProvider interface {
	// Return the distance in kilometers between two coordinates.
	DistanceKm(a, b domain.Coordinates) (float64, error)
}

// DistanceFunc adapts an ordinary function to DistanceProvider.
type DistanceFunc func(a, b domain.Coordinates) (float64, error)

func (f DistanceFunc) DistanceKm(a, b domain.Coordinates) (float64, error) {
	return f(a, b)
}
