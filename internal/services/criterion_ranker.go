package services

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"trip-route-service/internal/domain"
)

// topsisEpsilon keeps the closeness score defined when a candidate is both
// the ideal and the anti-ideal point.
const topsisEpsilon = 1e-6

// RankByKey orders evaluations ascending by the criterion's metric: total
// time for LeastTime, cost for LeastCost. The other metric breaks ties and
// the sort is stable, so equal candidates keep catalog order.
// The input slice is not modified.
func RankByKey(evals []domain.LegEvaluation, criterion domain.Criterion) ([]domain.LegEvaluation, error) {
	var primary, secondary func(domain.LegEvaluation) float64
	switch criterion {
	case domain.LeastTime:
		primary = func(e domain.LegEvaluation) float64 { return e.TotalTimeMin }
		secondary = func(e domain.LegEvaluation) float64 { return e.Cost }
	case domain.LeastCost:
		primary = func(e domain.LegEvaluation) float64 { return e.Cost }
		secondary = func(e domain.LegEvaluation) float64 { return e.TotalTimeMin }
	default:
		return nil, fmt.Errorf("rank by key: %w: %q", domain.ErrInvalidCriterion, criterion)
	}

	ranked := slices.Clone(evals)
	slices.SortStableFunc(ranked, func(a, b domain.LegEvaluation) int {
		if c := cmp.Compare(primary(a), primary(b)); c != 0 {
			return c
		}
		return cmp.Compare(secondary(a), secondary(b))
	})

	return ranked, nil
}

// ScoredEvaluation is a leg evaluation with its TOPSIS closeness score.
type ScoredEvaluation struct {
	domain.LegEvaluation
	Score float64
}

// RankTOPSIS ranks evaluations by closeness to the ideal point in the
// weighted, vector-normalized (total time, cost) space. Both criteria are
// cost-type, so the ideal is the column minimum and the anti-ideal the
// column maximum. Scores lie in [0, 1); the best candidate comes first and
// equal scores keep catalog order.
//
// A single candidate is both ideal and anti-ideal and scores 0.
func RankTOPSIS(evals []domain.LegEvaluation, w domain.WeightPair) []ScoredEvaluation {
	n := len(evals)
	if n == 0 {
		return []ScoredEvaluation{}
	}

	times := make([]float64, n)
	costs := make([]float64, n)
	for i, e := range evals {
		times[i] = e.TotalTimeMin
		costs[i] = e.Cost
	}

	wt := weightedColumn(times, w.Time)
	wc := weightedColumn(costs, w.Cost)

	idealT, antiT := slices.Min(wt), slices.Max(wt)
	idealC, antiC := slices.Min(wc), slices.Max(wc)

	scored := make([]ScoredEvaluation, n)
	for i := range evals {
		dPos := math.Hypot(wt[i]-idealT, wc[i]-idealC)
		dNeg := math.Hypot(wt[i]-antiT, wc[i]-antiC)
		scored[i] = ScoredEvaluation{
			LegEvaluation: evals[i],
			Score:         dNeg / (dPos + dNeg + topsisEpsilon),
		}
	}

	slices.SortStableFunc(scored, func(a, b ScoredEvaluation) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return scored
}

// weightedColumn divides each value by the column's Euclidean norm and
// multiplies by weight. A column with a zero or non-finite norm carries no
// information and contributes 0 for every candidate.
func weightedColumn(values []float64, weight float64) []float64 {
	sum := 0.0
	for _, v := range values {
		sum += v * v
	}
	norm := math.Sqrt(sum)

	out := make([]float64, len(values))
	if norm == 0 || math.IsInf(norm, 0) || math.IsNaN(norm) {
		return out
	}
	for i, v := range values {
		out[i] = v / norm * weight
	}
	return out
}
