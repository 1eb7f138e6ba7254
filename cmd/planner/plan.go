package main

import (
	"context"
	"fmt"
	"trip-route-service/internal/adapters/distance"
	"trip-route-service/internal/adapters/report"
	"trip-route-service/internal/adapters/repositories"
	"trip-route-service/internal/config"
	"trip-route-service/internal/domain"
	"trip-route-service/internal/services"

	"github.com/spf13/cobra"
)

// loadRequest reads the catalog files and planner config named by the flags.
func loadRequest(ctx context.Context) (services.PlanTripRequest, error) {
	path := plannerConfig
	if path == "" {
		path = config.Load().PlannerConfig
	}
	cfg, err := config.LoadPlanner(path)
	if err != nil {
		return services.PlanTripRequest{}, err
	}

	repo := &repositories.JSONCatalogRepository{
		OriginPath:       originPath,
		DestinationsPath: destinationsPath,
		ModesPath:        modesPath,
	}

	origin, err := repo.GetOrigin(ctx)
	if err != nil {
		return services.PlanTripRequest{}, err
	}
	dests, err := repo.ListDestinations(ctx)
	if err != nil {
		return services.PlanTripRequest{}, err
	}
	modes, err := repo.ListModes(ctx)
	if err != nil {
		return services.PlanTripRequest{}, err
	}

	return services.PlanTripRequest{
		Origin:          origin,
		Destinations:    dests,
		Modes:           modes,
		BalancedWeights: cfg.BalancedWeights,
		MaxDestinations: cfg.MaxDestinations,
	}, nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	criterion, err := domain.ParseCriterion(criterionFlag)
	if err != nil {
		return err
	}

	req, err := loadRequest(ctx)
	if err != nil {
		return err
	}
	req.Criterion = criterion

	provider := distance.NewHaversine()
	out := newRenderer(cmd.OutOrStdout(), useStyles(cmd.OutOrStdout(), noColor))

	var plan *domain.TripPlan
	if allCriteria {
		plans, err := services.PlanAllCriteria(ctx, req, provider)
		if err != nil {
			return err
		}
		for _, c := range domain.Criteria() {
			out.plan(plans[c])
		}
		plan = plans[criterion]
	} else {
		plan, err = services.PlanTrip(ctx, req, provider)
		if err != nil {
			return err
		}
		out.plan(plan)
	}

	if reportPath == "" {
		return nil
	}
	if choice < 1 || choice > len(plan.Alternatives) {
		return fmt.Errorf("--choice must be between 1 and %d, got %d", len(plan.Alternatives), choice)
	}
	if err := report.WriteCSVFile(reportPath, plan.Alternatives[choice-1]); err != nil {
		return err
	}
	out.note(fmt.Sprintf("Report for option %d (%s) saved to %s", choice, plan.Criterion, reportPath))

	return nil
}

func runPath(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := loadRequest(ctx)
	if err != nil {
		return err
	}

	matrix, err := services.BuildDistanceMatrix(req.Origin, req.Destinations, distance.NewHaversine(), services.NewDistanceMemo())
	if err != nil {
		return err
	}
	path, err := services.SolvePath(matrix.Origin(), matrix.Destinations(), matrix, req.MaxDestinations)
	if err != nil {
		return err
	}

	greedy, err := services.NearestNeighborPath(matrix.Origin(), matrix.Destinations(), matrix)
	if err != nil {
		return err
	}

	out := newRenderer(cmd.OutOrStdout(), useStyles(cmd.OutOrStdout(), noColor))
	out.path(path)
	if len(path.Stops) > 2 {
		out.baseline(greedy, path)
	}
	for _, f := range matrix.Unavailable() {
		out.warn(f.Err.Error())
	}

	return nil
}
