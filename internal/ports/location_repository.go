package ports

import (
	"context"
	"trip-route-service/internal/domain"
)

// Port: a boundary for retrieving the trip origin and destinations.
type LocationRepository interface {
	// Retrieve the fixed start of every path.
	GetOrigin(ctx context.Context) (domain.Location, error)
	// Retrieve all destinations available for planning.
	ListDestinations(ctx context.Context) ([]domain.Location, error)
}
