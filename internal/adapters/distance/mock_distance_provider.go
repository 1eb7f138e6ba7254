package distance

import (
	"fmt"
	"sync/atomic"
	"trip-route-service/internal/domain"
)

// MockPair fixes the distance between two coordinates, in both directions.
type MockPair struct {
	A, B domain.Coordinates
	Km   float64
}

type MockDistanceProvider struct {
	m     map[[2]domain.Coordinates]float64
	calls atomic.Int64
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[[2]domain.Coordinates]float64, 2*len(pairs))
	for _, p := range pairs {
		m[[2]domain.Coordinates{p.A, p.B}] = p.Km
		m[[2]domain.Coordinates{p.B, p.A}] = p.Km
	}
	return &MockDistanceProvider{m: m}
}

func (p *MockDistanceProvider) DistanceKm(a, b domain.Coordinates) (float64, error) {
	p.calls.Add(1)

	if a == b {
		return 0, nil
	}
	km, ok := p.m[[2]domain.Coordinates{a, b}]
	if !ok {
		return 0, fmt.Errorf("missing pair %v -> %v", a, b)
	}

	return km, nil
}

// Calls reports how many times DistanceKm was invoked.
func (p *MockDistanceProvider) Calls() int {
	return int(p.calls.Load())
}
