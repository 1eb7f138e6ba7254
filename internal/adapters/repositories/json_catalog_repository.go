package repositories

import (
	"context"
	"trip-route-service/internal/domain"
)

// JSON-file implementation of the LocationRepository and ModeRepository
// ports. Files are re-read on every call so edits are picked up without a
// restart.
type JSONCatalogRepository struct {
	OriginPath       string
	DestinationsPath string
	ModesPath        string
}

// NewJSONCatalogRepository reads origin.json and destinations.json from
// locationsDir and the mode catalog from modesPath.
func NewJSONCatalogRepository(locationsDir, modesPath string) *JSONCatalogRepository {
	origin, destinations := LocationPaths(locationsDir)
	return &JSONCatalogRepository{
		OriginPath:       origin,
		DestinationsPath: destinations,
		ModesPath:        modesPath,
	}
}

func (r *JSONCatalogRepository) GetOrigin(ctx context.Context) (domain.Location, error) {
	if err := ctx.Err(); err != nil {
		return domain.Location{}, err
	}
	return ReadOrigin(r.OriginPath)
}

func (r *JSONCatalogRepository) ListDestinations(ctx context.Context) ([]domain.Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ReadDestinations(r.DestinationsPath)
}

func (r *JSONCatalogRepository) ListModes(ctx context.Context) ([]domain.TransportMode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ReadModes(r.ModesPath)
}
