package services

import (
	"fmt"
	"trip-route-service/internal/domain"
)

// MaxAlternatives is the number of itineraries produced per criterion.
const MaxAlternatives = 3

type legCandidates struct {
	from, to   string
	distanceKm float64
	evals      []domain.LegEvaluation
}

// evaluateLegs evaluates every mode once for each consecutive pair of the
// path. The evaluations are shared read-only by all alternatives.
func evaluateLegs(path domain.Path, distances DistanceLookup, modes []domain.TransportMode) ([]legCandidates, error) {
	if len(path.Stops) < 2 {
		return []legCandidates{}, nil
	}
	if len(modes) == 0 {
		return nil, fmt.Errorf("evaluate legs: %w: transport mode catalog is empty", domain.ErrMissingField)
	}

	legs := make([]legCandidates, 0, len(path.Stops)-1)
	for i := 0; i+1 < len(path.Stops); i++ {
		from, to := path.Stops[i], path.Stops[i+1]

		km, err := distances.Distance(from, to)
		if err != nil {
			return nil, fmt.Errorf("evaluate legs: leg %q -> %q: %w: %w", from, to, domain.ErrMissingDistance, err)
		}

		evals, err := EvaluateModes(km, modes)
		if err != nil {
			return nil, fmt.Errorf("evaluate legs: leg %q -> %q: %w", from, to, err)
		}

		legs = append(legs, legCandidates{from: from, to: to, distanceKm: km, evals: evals})
	}

	return legs, nil
}

func buildItinerary(legs []legCandidates, pick func(i int, l legCandidates) domain.LegEvaluation) domain.Itinerary {
	it := domain.Itinerary{Legs: make([]domain.Leg, 0, len(legs))}
	for i, l := range legs {
		it.Legs = append(it.Legs, domain.Leg{
			From:       l.from,
			To:         l.to,
			DistanceKm: l.distanceKm,
			Selected:   pick(i, l),
		})
	}
	return it
}

// AlternativesByLegRank is the diversification policy of the least_time and
// least_cost criteria: alternative i takes, independently for every leg, the
// mode ranked i-th on that leg (the last rank when the catalog is shorter).
// An alternative is therefore not "mode X everywhere" but "each leg's i-th
// best mode", which yields variety even on a single leg.
func AlternativesByLegRank(
	path domain.Path,
	distances DistanceLookup,
	modes []domain.TransportMode,
	criterion domain.Criterion,
) ([]domain.Itinerary, error) {
	if criterion != domain.LeastTime && criterion != domain.LeastCost {
		return nil, fmt.Errorf("alternatives by leg rank: %w: %q", domain.ErrInvalidCriterion, criterion)
	}

	legs, err := evaluateLegs(path, distances, modes)
	if err != nil {
		return nil, fmt.Errorf("alternatives by leg rank: %w", err)
	}

	ranked := make([][]domain.LegEvaluation, len(legs))
	for i, l := range legs {
		r, err := RankByKey(l.evals, criterion)
		if err != nil {
			return nil, fmt.Errorf("alternatives by leg rank: %w", err)
		}
		ranked[i] = r
	}

	alternatives := make([]domain.Itinerary, 0, MaxAlternatives)
	for rank := 0; rank < MaxAlternatives; rank++ {
		alternatives = append(alternatives, buildItinerary(legs, func(i int, _ legCandidates) domain.LegEvaluation {
			r := ranked[i]
			if rank < len(r) {
				return r[rank]
			}
			return r[len(r)-1]
		}))
	}

	return alternatives, nil
}

// BalancedAlternatives builds one itinerary per weight pair by taking the
// TOPSIS top-ranked mode of every leg. Itineraries with identical per-leg
// mode choices collapse to one; when fewer than MaxAlternatives distinct
// ones remain, the full list truncated to MaxAlternatives is returned
// instead, duplicates included.
func BalancedAlternatives(
	path domain.Path,
	distances DistanceLookup,
	modes []domain.TransportMode,
	weights []domain.WeightPair,
) ([]domain.Itinerary, error) {
	if len(weights) == 0 {
		weights = domain.DefaultBalancedWeights()
	}

	legs, err := evaluateLegs(path, distances, modes)
	if err != nil {
		return nil, fmt.Errorf("balanced alternatives: %w", err)
	}

	all := make([]domain.Itinerary, 0, len(weights))
	for _, w := range weights {
		all = append(all, buildItinerary(legs, func(_ int, l legCandidates) domain.LegEvaluation {
			return RankTOPSIS(l.evals, w)[0].LegEvaluation
		}))
	}

	seen := make(map[string]struct{}, len(all))
	distinct := make([]domain.Itinerary, 0, len(all))
	for _, it := range all {
		sig := it.Signature()
		if _, ok := seen[sig]; ok {
			continue
		}
		seen[sig] = struct{}{}
		distinct = append(distinct, it)
	}

	if len(distinct) < MaxAlternatives {
		distinct = all
	}
	if len(distinct) > MaxAlternatives {
		distinct = distinct[:MaxAlternatives]
	}

	return distinct, nil
}

// AlternativeOptions tunes GenerateAlternatives.
type AlternativeOptions struct {
	// BalancedWeights are the (time, cost) pairs of the balanced criterion.
	// Empty means domain.DefaultBalancedWeights.
	BalancedWeights []domain.WeightPair
}

// GenerateAlternatives returns between 1 and MaxAlternatives itineraries for
// the solved path under criterion.
func GenerateAlternatives(
	path domain.Path,
	distances DistanceLookup,
	modes []domain.TransportMode,
	criterion domain.Criterion,
	opts AlternativeOptions,
) ([]domain.Itinerary, error) {
	var (
		alternatives []domain.Itinerary
		err          error
	)

	switch criterion {
	case domain.LeastTime, domain.LeastCost:
		alternatives, err = AlternativesByLegRank(path, distances, modes, criterion)
	case domain.Balanced:
		alternatives, err = BalancedAlternatives(path, distances, modes, opts.BalancedWeights)
	default:
		return nil, fmt.Errorf("generate alternatives: %w: %q", domain.ErrInvalidCriterion, criterion)
	}
	if err != nil {
		return nil, fmt.Errorf("generate alternatives: %w", err)
	}

	return alternatives, nil
}
