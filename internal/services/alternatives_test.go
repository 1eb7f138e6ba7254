package services

import (
	"testing"
	"trip-route-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abcPath() (domain.Path, staticDistances) {
	d := staticDistances{}.set("A", "B", 10).set("B", "C", 5)
	return domain.Path{Stops: []string{"A", "B", "C"}, TotalDistanceKm: 15}, d
}

func busAndWalking() []domain.TransportMode {
	return []domain.TransportMode{
		domain.NewTransportMode("Bus", 40, 2, 5),
		domain.NewTransportMode("Walking", 5, 0, 0),
	}
}

func TestAlternativesByLegRankLeastTime(t *testing.T) {
	path, d := abcPath()

	alts, err := AlternativesByLegRank(path, d, busAndWalking(), domain.LeastTime)
	require.NoError(t, err)
	require.Len(t, alts, MaxAlternatives)

	assert.Equal(t, []string{"Bus", "Bus"}, modeNames(alts[0]))
	// Two modes only: ranks past the end reuse the slowest one.
	assert.Equal(t, []string{"Walking", "Walking"}, modeNames(alts[1]))
	assert.Equal(t, []string{"Walking", "Walking"}, modeNames(alts[2]))

	first := alts[0]
	assert.Equal(t, []string{"A", "B", "C"}, first.Stops())
	assert.InDelta(t, 15.0, first.TotalDistanceKm(), 1e-9)
	assert.InDelta(t, 20+12.5, first.TotalTimeMin(), 1e-9)
	assert.InDelta(t, 30.0, first.TotalCost(), 1e-9)
	assert.Equal(t, 10.0, first.Legs[0].DistanceKm)
}

func TestAlternativesByLegRankLeastCost(t *testing.T) {
	path, d := abcPath()

	alts, err := AlternativesByLegRank(path, d, catalog(), domain.LeastCost)
	require.NoError(t, err)
	require.Len(t, alts, MaxAlternatives)

	assert.Equal(t, []string{"Bicycle", "Bicycle"}, modeNames(alts[0]))
	assert.Equal(t, []string{"Walking", "Walking"}, modeNames(alts[1]))
	assert.Equal(t, []string{"Bus", "Bus"}, modeNames(alts[2]))
}

func TestAlternativesByLegRankRanksEachLegIndependently(t *testing.T) {
	// On a short leg the cheap fast mode wins; on a long one the train does.
	modes := []domain.TransportMode{
		domain.NewTransportMode("Train", 100, 1, 30),
		domain.NewTransportMode("Scooter", 20, 1, 0),
	}
	d := staticDistances{}.set("A", "B", 1).set("B", "C", 100)
	path := domain.Path{Stops: []string{"A", "B", "C"}}

	alts, err := AlternativesByLegRank(path, d, modes, domain.LeastTime)
	require.NoError(t, err)

	assert.Equal(t, []string{"Scooter", "Train"}, modeNames(alts[0]))
	assert.Equal(t, []string{"Train", "Scooter"}, modeNames(alts[1]))
}

func TestAlternativesByLegRankSingleMode(t *testing.T) {
	path, d := abcPath()

	alts, err := AlternativesByLegRank(path, d, catalog()[:1], domain.LeastTime)
	require.NoError(t, err)
	require.Len(t, alts, MaxAlternatives)
	for _, it := range alts {
		assert.Equal(t, []string{"Bus", "Bus"}, modeNames(it))
	}
}

func TestAlternativesByLegRankRejectsBalanced(t *testing.T) {
	path, d := abcPath()

	_, err := AlternativesByLegRank(path, d, catalog(), domain.Balanced)
	assert.ErrorIs(t, err, domain.ErrInvalidCriterion)
}

func TestBalancedAlternativesCollapseFallsBackToFullList(t *testing.T) {
	path, d := abcPath()

	alts, err := BalancedAlternatives(path, d, catalog()[:1], nil)
	require.NoError(t, err)
	require.Len(t, alts, MaxAlternatives)
	for _, it := range alts {
		assert.Equal(t, []string{"Bus", "Bus"}, modeNames(it))
	}
}

func TestBalancedAlternativesDistinct(t *testing.T) {
	modes := []domain.TransportMode{
		domain.NewTransportMode("Train", 80, 5, 2),
		domain.NewTransportMode("Walking", 5, 0, 0),
		domain.NewTransportMode("Bus", 40, 2, 5),
	}
	d := staticDistances{}.set("A", "B", 10)
	path := domain.Path{Stops: []string{"A", "B"}}

	weights := []domain.WeightPair{{Time: 1, Cost: 0}, {Time: 0, Cost: 1}, {Time: 0.5, Cost: 0.5}}
	alts, err := BalancedAlternatives(path, d, modes, weights)
	require.NoError(t, err)
	require.Len(t, alts, 3)
	assert.Equal(t, []string{"Train"}, modeNames(alts[0]))
	assert.Equal(t, []string{"Walking"}, modeNames(alts[1]))
	assert.Equal(t, []string{"Bus"}, modeNames(alts[2]))

	// A repeated weight pair is dropped and the rest still fill three slots.
	weights = []domain.WeightPair{{Time: 1, Cost: 0}, {Time: 1, Cost: 0}, {Time: 0, Cost: 1}, {Time: 0.5, Cost: 0.5}}
	alts, err = BalancedAlternatives(path, d, modes, weights)
	require.NoError(t, err)
	require.Len(t, alts, 3)
	assert.Equal(t, []string{"Train"}, modeNames(alts[0]))
	assert.Equal(t, []string{"Walking"}, modeNames(alts[1]))
	assert.Equal(t, []string{"Bus"}, modeNames(alts[2]))
}

func TestBalancedAlternativesFewDistinctKeepsDuplicates(t *testing.T) {
	modes := []domain.TransportMode{
		domain.NewTransportMode("Train", 80, 5, 2),
		domain.NewTransportMode("Walking", 5, 0, 0),
	}
	d := staticDistances{}.set("A", "B", 10)
	path := domain.Path{Stops: []string{"A", "B"}}

	weights := []domain.WeightPair{{Time: 1, Cost: 0}, {Time: 1, Cost: 0}, {Time: 0, Cost: 1}}
	alts, err := BalancedAlternatives(path, d, modes, weights)
	require.NoError(t, err)
	require.Len(t, alts, 3)
	assert.Equal(t, []string{"Train"}, modeNames(alts[0]))
	assert.Equal(t, []string{"Train"}, modeNames(alts[1]))
	assert.Equal(t, []string{"Walking"}, modeNames(alts[2]))
}

func TestGenerateAlternativesCardinality(t *testing.T) {
	path, d := abcPath()

	for _, modes := range [][]domain.TransportMode{catalog()[:1], busAndWalking(), catalog()} {
		for _, c := range domain.Criteria() {
			alts, err := GenerateAlternatives(path, d, modes, c, AlternativeOptions{})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(alts), 1, c)
			assert.LessOrEqual(t, len(alts), MaxAlternatives, c)

			for _, it := range alts {
				assert.Equal(t, path.Stops, it.Stops())
			}
		}
	}
}

func TestGenerateAlternativesNoLegs(t *testing.T) {
	path := domain.Path{Stops: []string{}}

	alts, err := GenerateAlternatives(path, staticDistances{}, nil, domain.Balanced, AlternativeOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, alts)
	for _, it := range alts {
		assert.Empty(t, it.Legs)
	}
}

func TestGenerateAlternativesErrors(t *testing.T) {
	path, d := abcPath()

	_, err := GenerateAlternatives(path, d, catalog(), domain.Criterion("scenic"), AlternativeOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidCriterion)

	_, err = GenerateAlternatives(path, d, nil, domain.LeastTime, AlternativeOptions{})
	assert.ErrorIs(t, err, domain.ErrMissingField)

	gap := staticDistances{}.set("A", "B", 10)
	_, err = GenerateAlternatives(path, gap, catalog(), domain.LeastCost, AlternativeOptions{})
	assert.ErrorIs(t, err, domain.ErrMissingDistance)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	broken := append(catalog(), domain.TransportMode{Name: "Ghost"})
	_, err = GenerateAlternatives(path, d, broken, domain.Balanced, AlternativeOptions{})
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestGenerateAlternativesDoNotShareLegs(t *testing.T) {
	path, d := abcPath()

	alts, err := GenerateAlternatives(path, d, catalog()[:1], domain.Balanced, AlternativeOptions{})
	require.NoError(t, err)
	require.Len(t, alts, 3)

	alts[0].Legs[0].Selected.Mode = "Changed"
	assert.Equal(t, "Bus", alts[1].Legs[0].Selected.Mode)
	assert.Equal(t, "Bus", alts[2].Legs[0].Selected.Mode)
}
