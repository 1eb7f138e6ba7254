package domain

import (
	"fmt"
	"strings"
)

// Optimization criterion selected by the user.
type Criterion string

const (
	LeastTime Criterion = "least_time"
	LeastCost Criterion = "least_cost"
	Balanced  Criterion = "balanced"
)

// Criteria lists the recognized criteria in menu order.
func Criteria() []Criterion {
	return []Criterion{LeastTime, LeastCost, Balanced}
}

func (c Criterion) Valid() bool {
	switch c {
	case LeastTime, LeastCost, Balanced:
		return true
	}
	return false
}

// ParseCriterion accepts the canonical names, the legacy "balanced_topsis"
// spelling and the menu digits 1, 2 and 3.
func ParseCriterion(s string) (Criterion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "least_time", "1":
		return LeastTime, nil
	case "least_cost", "2":
		return LeastCost, nil
	case "balanced", "balanced_topsis", "3":
		return Balanced, nil
	}
	return "", fmt.Errorf("parse criterion %q: %w", s, ErrInvalidCriterion)
}

// Time/cost weight pair used by the balanced criterion.
// The weights need not sum to 1.
type WeightPair struct {
	Time float64 `json:"time" yaml:"time"`
	Cost float64 `json:"cost" yaml:"cost"`
}

// DefaultBalancedWeights are the weight pairs that produce the three
// balanced alternatives when no configuration overrides them.
func DefaultBalancedWeights() []WeightPair {
	return []WeightPair{
		{Time: 0.75, Cost: 0.25},
		{Time: 0.80, Cost: 0.20},
		{Time: 0.85, Cost: 0.15},
	}
}
