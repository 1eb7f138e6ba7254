package services

import (
	"math"
	"testing"
	"trip-route-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateModesTravelTime(t *testing.T) {
	bus := []domain.TransportMode{domain.NewTransportMode("Bus", 40, 2, 5)}

	cases := []struct {
		km         float64
		wantTravel float64
	}{
		{10, 15},
		{20, 30},
		{5, 7.5},
		{0, 0},
	}

	for _, tc := range cases {
		evals, err := EvaluateModes(tc.km, bus)
		require.NoError(t, err)
		require.Len(t, evals, 1)

		e := evals[0]
		assert.InDelta(t, tc.wantTravel, e.TravelTimeMin, 1e-9, "km=%v", tc.km)
		assert.Equal(t, 5.0, e.TransferTimeMin)
		assert.InDelta(t, tc.wantTravel+5, e.TotalTimeMin, 1e-9)
		assert.InDelta(t, tc.km*2, e.Cost, 1e-9)
	}
}

func TestEvaluateModesKeepsCatalogOrder(t *testing.T) {
	modes := catalog()

	evals, err := EvaluateModes(10, modes)
	require.NoError(t, err)
	require.Len(t, evals, len(modes))

	for i, m := range modes {
		assert.Equal(t, m.Name, evals[i].Mode)
	}

	train := evals[1]
	assert.InDelta(t, 7.5, train.TravelTimeMin, 1e-9)
	assert.InDelta(t, 9.5, train.TotalTimeMin, 1e-9)
	assert.InDelta(t, 50.0, train.Cost, 1e-9)

	walking := evals[2]
	assert.InDelta(t, 120.0, walking.TotalTimeMin, 1e-9)
	assert.Zero(t, walking.Cost)
}

func TestEvaluateModesEmptyCatalog(t *testing.T) {
	evals, err := EvaluateModes(3, nil)
	require.NoError(t, err)
	assert.Empty(t, evals)
}

func TestEvaluateModesMissingField(t *testing.T) {
	speed := 40.0
	modes := []domain.TransportMode{
		domain.NewTransportMode("Bus", 40, 2, 5),
		{Name: "Ferry", SpeedKmh: &speed},
	}

	evals, err := EvaluateModes(10, modes)
	assert.ErrorIs(t, err, domain.ErrMissingField)
	assert.Nil(t, evals)
}

func TestEvaluateModesInvalidValues(t *testing.T) {
	cases := map[string]domain.TransportMode{
		"zero speed":        domain.NewTransportMode("Stuck", 0, 1, 0),
		"negative speed":    domain.NewTransportMode("Back", -5, 1, 0),
		"negative cost":     domain.NewTransportMode("Paid", 10, -1, 0),
		"negative transfer": domain.NewTransportMode("Early", 10, 1, -2),
	}

	for name, mode := range cases {
		_, err := EvaluateModes(10, []domain.TransportMode{mode})
		assert.ErrorIs(t, err, domain.ErrInvalidField, name)
	}
}

func TestEvaluateModesRejectsBadDistance(t *testing.T) {
	_, err := EvaluateModes(-1, catalog())
	assert.ErrorIs(t, err, domain.ErrInvalidField)

	_, err = EvaluateModes(math.NaN(), catalog())
	assert.ErrorIs(t, err, domain.ErrInvalidField)
}

func TestEvaluateModesUnreachableLeg(t *testing.T) {
	evals, err := EvaluateModes(math.Inf(1), catalog())
	require.NoError(t, err)

	for _, e := range evals {
		assert.True(t, math.IsInf(e.TotalTimeMin, 1), e.Mode)
	}
	assert.True(t, math.IsInf(evals[0].Cost, 1))
	assert.Zero(t, evals[2].Cost, "a free mode stays free")
}
