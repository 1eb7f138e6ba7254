package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"
	"trip-route-service/internal/domain"

	"gopkg.in/yaml.v3"
)

// Get returns the value of the environment variable key, or fallback when
// it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Env is the process configuration read from the environment. Commands call
// godotenv.Load before Load so a local .env file can supply the values.
type Env struct {
	Port              string
	DBDriver          string
	DBPath            string
	DatabaseURL       string
	SeedLocationsPath string
	SeedModesPath     string
	PlannerConfig     string
}

func Load() Env {
	return Env{
		Port:              Get("PORT", "8080"),
		DBDriver:          Get("DB_DRIVER", "sqlite"),
		DBPath:            Get("DB_PATH", "data/app.db"),
		DatabaseURL:       Get("DATABASE_URL", ""),
		SeedLocationsPath: Get("SEED_LOCATIONS_PATH", "data/seeds"),
		SeedModesPath:     Get("SEED_MODES_PATH", "data/seeds/modes.json"),
		PlannerConfig:     Get("PLANNER_CONFIG", "config/planner.yaml"),
	}
}

// Planner holds the tuning knobs of the trip planner.
type Planner struct {
	BalancedWeights []domain.WeightPair `yaml:"balanced_weights"`
	MaxDestinations int                 `yaml:"max_destinations"`
}

func DefaultPlanner() Planner {
	return Planner{
		BalancedWeights: domain.DefaultBalancedWeights(),
		MaxDestinations: 15,
	}
}

// LoadPlanner reads the YAML planner configuration at path. A missing file
// yields DefaultPlanner; keys absent from the file keep their defaults.
func LoadPlanner(path string) (Planner, error) {
	cfg := DefaultPlanner()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Planner{}, fmt.Errorf("load planner config: read %q: %w", path, err)
	}

	var file Planner
	if err := yaml.Unmarshal(b, &file); err != nil {
		return Planner{}, fmt.Errorf("load planner config: parse %q: %w", path, err)
	}

	if len(file.BalancedWeights) > 0 {
		cfg.BalancedWeights = file.BalancedWeights
	}
	if file.MaxDestinations != 0 {
		cfg.MaxDestinations = file.MaxDestinations
	}

	if err := cfg.Validate(); err != nil {
		return Planner{}, fmt.Errorf("load planner config: %q: %w", path, err)
	}

	return cfg, nil
}

func (p Planner) Validate() error {
	for i, w := range p.BalancedWeights {
		if !finiteNonNegative(w.Time) || !finiteNonNegative(w.Cost) {
			return fmt.Errorf("%w: balanced_weights[%d] must be finite and >= 0", domain.ErrInvalidField, i)
		}
		if w.Time == 0 && w.Cost == 0 {
			return fmt.Errorf("%w: balanced_weights[%d] is all zero", domain.ErrInvalidField, i)
		}
	}
	if p.MaxDestinations < 0 {
		return fmt.Errorf("%w: max_destinations must be >= 0, got %d", domain.ErrInvalidField, p.MaxDestinations)
	}
	return nil
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
