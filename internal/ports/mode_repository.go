package ports

import (
	"context"
	"trip-route-service/internal/domain"
)

// Port: a boundary for retrieving the transport mode catalog.
type ModeRepository interface {
	// Return every mode in catalog order.
	ListModes(ctx context.Context) ([]domain.TransportMode, error)
}
