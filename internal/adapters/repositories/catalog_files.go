package repositories

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"trip-route-service/internal/domain"
)

// File names inside a locations directory.
const (
	OriginFile       = "origin.json"
	DestinationsFile = "destinations.json"
)

// locationRecord mirrors domain.Location with optional fields so that an
// absent key can be reported instead of silently decoding to zero.
type locationRecord struct {
	Name      *string  `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r locationRecord) toLocation() (domain.Location, error) {
	if r.Name == nil || strings.TrimSpace(*r.Name) == "" {
		return domain.Location{}, fmt.Errorf("location: %w: name", domain.ErrMissingField)
	}
	name := strings.TrimSpace(*r.Name)

	if r.Latitude == nil {
		return domain.Location{}, fmt.Errorf("location %q: %w: latitude", name, domain.ErrMissingField)
	}
	if r.Longitude == nil {
		return domain.Location{}, fmt.Errorf("location %q: %w: longitude", name, domain.ErrMissingField)
	}

	lat, lon := *r.Latitude, *r.Longitude
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return domain.Location{}, fmt.Errorf("location %q: %w: latitude %v", name, domain.ErrInvalidField, lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return domain.Location{}, fmt.Errorf("location %q: %w: longitude %v", name, domain.ErrInvalidField, lon)
	}

	return domain.Location{Name: name, Latitude: lat, Longitude: lon}, nil
}

func readJSON(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse %q: %w", path, err)
	}
	return nil
}

// ReadOrigin loads the single origin object from path.
func ReadOrigin(path string) (domain.Location, error) {
	var rec locationRecord
	if err := readJSON(path, &rec); err != nil {
		return domain.Location{}, fmt.Errorf("read origin: %w", err)
	}

	loc, err := rec.toLocation()
	if err != nil {
		return domain.Location{}, fmt.Errorf("read origin: %w", err)
	}
	return loc, nil
}

// ReadDestinations loads the destination array from path, preserving file
// order. Names must be unique.
func ReadDestinations(path string) ([]domain.Location, error) {
	var recs []locationRecord
	if err := readJSON(path, &recs); err != nil {
		return nil, fmt.Errorf("read destinations: %w", err)
	}

	out := make([]domain.Location, 0, len(recs))
	seen := make(map[string]struct{}, len(recs))
	for i, rec := range recs {
		loc, err := rec.toLocation()
		if err != nil {
			return nil, fmt.Errorf("read destinations: item %d: %w", i+1, err)
		}
		if _, dup := seen[loc.Name]; dup {
			return nil, fmt.Errorf("read destinations: item %d: %w: %q", i+1, domain.ErrDuplicateLocation, loc.Name)
		}
		seen[loc.Name] = struct{}{}
		out = append(out, loc)
	}

	return out, nil
}

// ReadModes loads the transport mode catalog from path in file order.
// Every record is validated up front.
func ReadModes(path string) ([]domain.TransportMode, error) {
	var modes []domain.TransportMode
	if err := readJSON(path, &modes); err != nil {
		return nil, fmt.Errorf("read modes: %w", err)
	}

	seen := make(map[string]struct{}, len(modes))
	for i := range modes {
		modes[i].Name = strings.TrimSpace(modes[i].Name)
		if err := modes[i].Validate(); err != nil {
			return nil, fmt.Errorf("read modes: item %d: %w", i+1, err)
		}
		if _, dup := seen[modes[i].Name]; dup {
			return nil, fmt.Errorf("read modes: item %d: duplicate mode %q: %w", i+1, modes[i].Name, domain.ErrInvalidField)
		}
		seen[modes[i].Name] = struct{}{}
	}

	return modes, nil
}

// LocationPaths returns the origin and destinations file paths inside dir.
func LocationPaths(dir string) (origin, destinations string) {
	return filepath.Join(dir, OriginFile), filepath.Join(dir, DestinationsFile)
}
