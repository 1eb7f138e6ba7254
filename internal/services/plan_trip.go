package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

type PlanTripRequest struct {
	Origin          domain.Location
	Destinations    []domain.Location
	Modes           []domain.TransportMode
	Criterion       domain.Criterion
	BalancedWeights []domain.WeightPair
	MaxDestinations int
}

// solvedTrip is the read-only state shared by every criterion of one run.
type solvedTrip struct {
	matrix *DistanceMatrix
	path   domain.Path
}

func solveTrip(ctx context.Context, req PlanTripRequest, provider ports.DistanceProvider) (_ *solvedTrip, err error) {
	defer obs.Time(ctx, "services.solveTrip")(&err)

	if len(req.Destinations) > 0 && len(req.Modes) == 0 {
		return nil, fmt.Errorf("solve trip: %w: transport mode catalog is empty", domain.ErrMissingField)
	}

	// The memo lives exactly as long as this planning run.
	matrix, err := BuildDistanceMatrix(req.Origin, req.Destinations, provider, NewDistanceMemo())
	if err != nil {
		return nil, fmt.Errorf("solve trip: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := SolvePath(matrix.Origin(), matrix.Destinations(), matrix, req.MaxDestinations)
	if err != nil {
		return nil, fmt.Errorf("solve trip: %w", err)
	}

	return &solvedTrip{matrix: matrix, path: path}, nil
}

func (s *solvedTrip) plan(req PlanTripRequest, criterion domain.Criterion) (*domain.TripPlan, error) {
	alternatives, err := GenerateAlternatives(
		s.path,
		s.matrix,
		req.Modes,
		criterion,
		AlternativeOptions{BalancedWeights: req.BalancedWeights},
	)
	if err != nil {
		return nil, err
	}

	return &domain.TripPlan{
		Criterion:    criterion,
		Path:         s.path,
		Alternatives: alternatives,
		Unavailable:  s.matrix.Unavailable(),
	}, nil
}

// PlanTrip computes the optimal visiting order from the origin and up to
// three itineraries for req.Criterion.
//
// The criterion is validated before the distance matrix is built, so an
// invalid request never reaches the exponential solver.
func PlanTrip(
	ctx context.Context,
	req PlanTripRequest,
	provider ports.DistanceProvider,
) (_ *domain.TripPlan, err error) {
	defer obs.Time(ctx, "services.PlanTrip")(&err)

	if !req.Criterion.Valid() {
		return nil, fmt.Errorf("plan trip: %w: %q", domain.ErrInvalidCriterion, req.Criterion)
	}

	solved, err := solveTrip(ctx, req, provider)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	plan, err := solved.plan(req, req.Criterion)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	return plan, nil
}

type criterionResult struct {
	criterion domain.Criterion
	plan      *domain.TripPlan
	err       error
}

// PlanAllCriteria solves the path once and generates the alternatives of
// every criterion concurrently over the shared, read-only matrix and path.
// req.Criterion is ignored.
func PlanAllCriteria(
	ctx context.Context,
	req PlanTripRequest,
	provider ports.DistanceProvider,
) (_ map[domain.Criterion]*domain.TripPlan, err error) {
	defer obs.Time(ctx, "services.PlanAllCriteria")(&err)

	solved, err := solveTrip(ctx, req, provider)
	if err != nil {
		return nil, fmt.Errorf("plan all criteria: %w", err)
	}

	criteria := domain.Criteria()
	resultsCh := make(chan criterionResult, len(criteria))
	var wg sync.WaitGroup

	for _, c := range criteria {
		wg.Add(1)
		go func(criterion domain.Criterion) {
			defer wg.Done()

			plan, err := solved.plan(req, criterion)
			resultsCh <- criterionResult{criterion: criterion, plan: plan, err: err}
		}(c)
	}

	wg.Wait()
	close(resultsCh)

	plans := make(map[domain.Criterion]*domain.TripPlan, len(criteria))
	var errs []error
	for res := range resultsCh {
		if res.err != nil {
			errs = append(errs, fmt.Errorf("criterion %s: %w", res.criterion, res.err))
			continue
		}
		plans[res.criterion] = res.plan
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("plan all criteria: %w", errors.Join(errs...))
	}

	return plans, nil
}
