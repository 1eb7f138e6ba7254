package services

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"

	"github.com/patrickmn/go-cache"
)

// DistanceMemo memoizes great-circle distances keyed by the unordered
// coordinate pair. A memo belongs to one planning run: it is filled while
// the matrix is built and never invalidated, so it has no expiration and no
// cleanup goroutine.
type DistanceMemo struct {
	c *cache.Cache
}

func NewDistanceMemo() *DistanceMemo {
	return &DistanceMemo{c: cache.New(cache.NoExpiration, 0)}
}

type memoEntry struct {
	km  float64
	err error
}

// Distance returns the memoized distance for (a, b), calling provider on the
// first request for the unordered pair only. Failures are memoized too.
func (m *DistanceMemo) Distance(provider ports.DistanceProvider, a, b domain.Coordinates) (float64, error) {
	key := coordsKey(a, b)
	if v, ok := m.c.Get(key); ok {
		e := v.(memoEntry)
		return e.km, e.err
	}

	km, err := provider.DistanceKm(a, b)
	m.c.Set(key, memoEntry{km: km, err: err}, cache.NoExpiration)
	return km, err
}

// Len reports the number of memoized pairs.
func (m *DistanceMemo) Len() int {
	return m.c.ItemCount()
}

func coordsKey(a, b domain.Coordinates) string {
	if b.Lat < a.Lat || (b.Lat == a.Lat && b.Lon < a.Lon) {
		a, b = b, a
	}
	var sb strings.Builder
	sb.WriteString(strconv.FormatFloat(a.Lat, 'g', -1, 64))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatFloat(a.Lon, 'g', -1, 64))
	sb.WriteByte('|')
	sb.WriteString(strconv.FormatFloat(b.Lat, 'g', -1, 64))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatFloat(b.Lon, 'g', -1, 64))
	return sb.String()
}

// DistanceLookup is the read side of a distance matrix.
type DistanceLookup interface {
	Distance(a, b string) (float64, error)
}

type namePair struct{ a, b string }

func newNamePair(a, b string) namePair {
	if b < a {
		a, b = b, a
	}
	return namePair{a: a, b: b}
}

// DistanceMatrix is the symmetric table of distances among the origin and
// every destination of one planning run. It is read-only after
// BuildDistanceMatrix returns and safe for concurrent readers.
type DistanceMatrix struct {
	origin       string
	destinations []string
	known        map[string]struct{}
	dist         map[namePair]float64
	unavailable  []domain.PairFailure
}

// BuildDistanceMatrix computes the distance of every unordered pair among
// {origin} ∪ destinations. A pair the provider cannot measure is stored as
// +Inf and reported by Unavailable; it does not abort the build.
func BuildDistanceMatrix(
	origin domain.Location,
	destinations []domain.Location,
	provider ports.DistanceProvider,
	memo *DistanceMemo,
) (*DistanceMatrix, error) {
	if provider == nil {
		return nil, errors.New("build distance matrix: provider is nil")
	}
	if memo == nil {
		memo = NewDistanceMemo()
	}

	all := make([]domain.Location, 0, 1+len(destinations))
	all = append(all, origin)
	all = append(all, destinations...)

	known := make(map[string]struct{}, len(all))
	for i, loc := range all {
		if strings.TrimSpace(loc.Name) == "" {
			return nil, fmt.Errorf("build distance matrix: location #%d: %w: name", i, domain.ErrMissingField)
		}
		if _, dup := known[loc.Name]; dup {
			return nil, fmt.Errorf("build distance matrix: %w: %q", domain.ErrDuplicateLocation, loc.Name)
		}
		known[loc.Name] = struct{}{}
	}

	m := &DistanceMatrix{
		origin:       origin.Name,
		destinations: make([]string, 0, len(destinations)),
		known:        known,
		dist:         make(map[namePair]float64, len(all)*(len(all)-1)/2),
	}
	for _, d := range destinations {
		m.destinations = append(m.destinations, d.Name)
	}

	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			a, b := all[i], all[j]
			km, err := memo.Distance(provider, a.Coords(), b.Coords())
			if err != nil {
				log.Printf("op=distance_matrix from=%q to=%q err=%v", a.Name, b.Name, err)
				m.unavailable = append(m.unavailable, domain.PairFailure{
					A:   a.Name,
					B:   b.Name,
					Err: fmt.Errorf("%w: %q <-> %q: %w", domain.ErrDistanceUnavailable, a.Name, b.Name, err),
				})
				km = math.Inf(1)
			}
			m.dist[newNamePair(a.Name, b.Name)] = km
		}
	}

	return m, nil
}

// Distance returns the distance between two known locations in kilometers.
func (m *DistanceMatrix) Distance(a, b string) (float64, error) {
	if a == b {
		if _, ok := m.known[a]; ok {
			return 0, nil
		}
		return 0, fmt.Errorf("distance %q -> %q: %w", a, b, domain.ErrNotFound)
	}

	km, ok := m.dist[newNamePair(a, b)]
	if !ok {
		return 0, fmt.Errorf("distance %q -> %q: %w", a, b, domain.ErrNotFound)
	}
	return km, nil
}

func (m *DistanceMatrix) Origin() string { return m.origin }

// Destinations returns the destination names in input order.
func (m *DistanceMatrix) Destinations() []string {
	out := make([]string, len(m.destinations))
	copy(out, m.destinations)
	return out
}

// Len reports the number of stored pairs.
func (m *DistanceMatrix) Len() int { return len(m.dist) }

// Unavailable lists the pairs recorded as +Inf during the build.
func (m *DistanceMatrix) Unavailable() []domain.PairFailure {
	out := make([]domain.PairFailure, len(m.unavailable))
	copy(out, m.unavailable)
	return out
}
