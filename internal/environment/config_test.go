package environment_test

import (
	"testing"
	"time"

	"github.com/paridad/conform/internal/environment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEnvConfigDefaults(t *testing.T) {
	cfg, err := environment.ReadEnvConfig()
	require.NoError(t, err)

	assert.Equal(t, environment.DefaultExamplesDir, cfg.ExamplesDir)
	assert.Equal(t, environment.DefaultTraceDir, cfg.TraceDir)
	assert.Equal(t, 2*time.Millisecond, cfg.TimeBudget)
	assert.Equal(t, environment.DefaultCallBudget, cfg.CallBudget)
	assert.Equal(t, environment.DefaultTolerance, cfg.Tolerance)
}

func TestReadEnvConfigOverrides(t *testing.T) {
	t.Setenv("CONFORM_TIME_BUDGET_MS", "5")
	t.Setenv("CONFORM_CALL_BUDGET", "250")
	t.Setenv("CONFORM_TOLERANCE", "3")
	t.Setenv("CONFORM_TRACER", "/usr/local/bin/renacer")

	cfg, err := environment.ReadEnvConfig()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Millisecond, cfg.TimeBudget)
	assert.Equal(t, 250, cfg.CallBudget)
	assert.Equal(t, 3, cfg.Tolerance)
	assert.Equal(t, "/usr/local/bin/renacer", cfg.TracerPath)
}

func TestReadEnvConfigRejectsNonNumericBudget(t *testing.T) {
	t.Setenv("CONFORM_CALL_BUDGET", "plenty")

	_, err := environment.ReadEnvConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONFORM_CALL_BUDGET")
}
