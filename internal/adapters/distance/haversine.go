package distance

import (
	"fmt"
	"math"
	"trip-route-service/internal/domain"
)

const earthRadiusKm = 6371.0

// Haversine implements DistanceProvider with the great-circle distance on a
// spherical earth.
type Haversine struct{}

func NewHaversine() Haversine { return Haversine{} }

// DistanceKm rejects NaN, infinite and out-of-range coordinates instead of
// returning a meaningless number.
func (Haversine) DistanceKm(a, b domain.Coordinates) (float64, error) {
	if err := validCoords(a); err != nil {
		return 0, fmt.Errorf("haversine distance: %w", err)
	}
	if err := validCoords(b); err != nil {
		return 0, fmt.Errorf("haversine distance: %w", err)
	}

	lat1 := a.Lat * math.Pi / 180.0
	lon1 := a.Lon * math.Pi / 180.0
	lat2 := b.Lat * math.Pi / 180.0
	lon2 := b.Lon * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c, nil
}

func validCoords(c domain.Coordinates) error {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lon, 0) {
		return fmt.Errorf("malformed coordinates (%v, %v)", c.Lat, c.Lon)
	}
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", c.Lon)
	}
	return nil
}
