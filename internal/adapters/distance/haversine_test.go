package distance

import (
	"math"
	"testing"
	"trip-route-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineKnownDistances(t *testing.T) {
	h := NewHaversine()

	london := domain.Coordinates{Lat: 51.5074, Lon: -0.1278}
	paris := domain.Coordinates{Lat: 48.8566, Lon: 2.3522}

	d, err := h.DistanceKm(london, paris)
	require.NoError(t, err)
	assert.InDelta(t, 343.5, d, 1.0)

	back, err := h.DistanceKm(paris, london)
	require.NoError(t, err)
	assert.Equal(t, d, back)

	zero, err := h.DistanceKm(paris, paris)
	require.NoError(t, err)
	assert.Zero(t, zero)
}

func TestHaversineSeoulStreets(t *testing.T) {
	gangnam := domain.Coordinates{Lat: 37.4979, Lon: 127.0276}
	sinsa := domain.Coordinates{Lat: 37.5172, Lon: 127.0286}

	d, err := NewHaversine().DistanceKm(gangnam, sinsa)
	require.NoError(t, err)
	assert.InDelta(t, 2.15, d, 0.05)
}

func TestHaversineRejectsMalformedCoordinates(t *testing.T) {
	ok := domain.Coordinates{Lat: 10, Lon: 10}
	bad := []domain.Coordinates{
		{Lat: math.NaN(), Lon: 0},
		{Lat: 0, Lon: math.Inf(1)},
		{Lat: 91, Lon: 0},
		{Lat: 0, Lon: -181},
	}

	for _, c := range bad {
		_, err := NewHaversine().DistanceKm(ok, c)
		assert.Error(t, err, "%v", c)
	}
}

func TestMockDistanceProvider(t *testing.T) {
	a := domain.Coordinates{Lat: 1, Lon: 1}
	b := domain.Coordinates{Lat: 2, Lon: 2}
	c := domain.Coordinates{Lat: 3, Lon: 3}

	p := NewMockDistanceProvider([]MockPair{{A: a, B: b, Km: 7}})

	d, err := p.DistanceKm(b, a)
	require.NoError(t, err)
	assert.Equal(t, 7.0, d)

	_, err = p.DistanceKm(a, c)
	assert.Error(t, err)
	assert.Equal(t, 2, p.Calls())
}
