package config

import (
	"os"
	"path/filepath"
	"testing"
	"trip-route-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestGet(t *testing.T) {
	t.Setenv("TRIP_TEST_KEY", "value")
	t.Setenv("TRIP_TEST_BLANK", "   ")

	assert.Equal(t, "value", Get("TRIP_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", Get("TRIP_TEST_BLANK", "fallback"))
	assert.Equal(t, "fallback", Get("TRIP_TEST_UNSET_KEY", "fallback"))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "pgx")

	env := Load()
	assert.Equal(t, "8080", env.Port)
	assert.Equal(t, "pgx", env.DBDriver)
}

func TestLoadPlannerMissingFile(t *testing.T) {
	cfg, err := LoadPlanner(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPlanner(), cfg)

	cfg, err = LoadPlanner("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPlanner(), cfg)
}

func TestLoadPlannerOverrides(t *testing.T) {
	path := writeFile(t, "planner.yaml", `
balanced_weights:
  - {time: 1, cost: 0}
  - {time: 0.5, cost: 0.5}
max_destinations: 12
`)

	cfg, err := LoadPlanner(path)
	require.NoError(t, err)
	assert.Equal(t, []domain.WeightPair{{Time: 1, Cost: 0}, {Time: 0.5, Cost: 0.5}}, cfg.BalancedWeights)
	assert.Equal(t, 12, cfg.MaxDestinations)
}

func TestLoadPlannerPartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, "planner.yaml", "max_destinations: 9\n")

	cfg, err := LoadPlanner(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBalancedWeights(), cfg.BalancedWeights)
	assert.Equal(t, 9, cfg.MaxDestinations)
}

func TestLoadPlannerRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"negative weight": "balanced_weights:\n  - {time: -1, cost: 1}\n",
		"zero pair":       "balanced_weights:\n  - {time: 0, cost: 0}\n",
		"negative limit":  "max_destinations: -3\n",
	}

	for name, body := range cases {
		_, err := LoadPlanner(writeFile(t, "planner.yaml", body))
		assert.ErrorIs(t, err, domain.ErrInvalidField, name)
	}
}

func TestLoadPlannerMalformedYAML(t *testing.T) {
	_, err := LoadPlanner(writeFile(t, "planner.yaml", "balanced_weights: [oops\n"))
	assert.Error(t, err)
}
