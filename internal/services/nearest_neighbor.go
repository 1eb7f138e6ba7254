package services

import (
	"errors"
	"fmt"
	"trip-route-service/internal/domain"
)

// NearestNeighborPath builds an open path greedily: from the current stop it
// always moves to the closest unvisited destination.
//
// It does not attempt global optimization and serves as a baseline for
// SolvePath; it has no destination limit. Ties go to the destination listed
// first, so the result is deterministic.
func NearestNeighborPath(
	originName string,
	destinationNames []string,
	distances DistanceLookup,
) (domain.Path, error) {
	if originName == "" {
		return domain.Path{}, errors.New("nearest neighbor path: origin must be non-empty")
	}

	if len(destinationNames) == 0 {
		return domain.Path{Stops: []string{}, TotalDistanceKm: 0}, nil
	}

	remaining := make([]string, len(destinationNames))
	copy(remaining, destinationNames)

	current := originName
	stops := make([]string, 0, len(destinationNames)+1)
	stops = append(stops, originName)
	total := 0.0

	for len(remaining) > 0 {
		best := -1
		bestKm := 0.0

		// Select next stop by minimum distance (greedy step).
		for i, d := range remaining {
			km, err := distances.Distance(current, d)
			if err != nil {
				return domain.Path{}, fmt.Errorf("nearest neighbor path: %w", err)
			}
			if best < 0 || km < bestKm {
				best, bestKm = i, km
			}
		}

		current = remaining[best]
		stops = append(stops, current)
		total += bestKm
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return domain.Path{Stops: stops, TotalDistanceKm: total}, nil
}
