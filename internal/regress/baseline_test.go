package regress_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paridad/conform/internal/regress"
	"github.com/paridad/conform/internal/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The checked-in baseline for the trivial CLI must satisfy every static
// check; it is the fixture the regression pipeline diffs against.

const (
	baselineTrace   = "../../golden_traces/trivial_cli_rust.json"
	baselineSummary = "../../golden_traces/trivial_cli_rust_summary.txt"
)

func TestCheckedInBaselineExists(t *testing.T) {
	_, err := os.Stat(baselineTrace)
	require.NoError(t, err, "golden trace should exist; regenerate it with scripts/capture_golden_traces.sh")
}

func TestCheckedInBaselinePassesAllChecks(t *testing.T) {
	golden, err := trace.NewStore().Load(baselineTrace)
	require.NoError(t, err)

	sum, err := trace.LoadSummary(baselineSummary)
	require.NoError(t, err)

	budgets := regress.DefaultBudgets()
	assert.NoError(t, regress.CheckExistence(golden))
	assert.NoError(t, regress.CheckTimeBudget(sum, budgets.MaxWallTime))
	assert.NoError(t, regress.CheckCallBudget(sum, budgets.MaxSyscalls))
	assert.NoError(t, regress.CheckPatterns(golden))
}

func TestCheckedInBaselineSummaryMatchesTrace(t *testing.T) {
	golden, err := trace.NewStore().Load(baselineTrace)
	require.NoError(t, err)

	sum, err := trace.LoadSummary(baselineSummary)
	require.NoError(t, err)

	assert.Equal(t, len(golden.Syscalls), sum.TotalCalls,
		"summary total must agree with the trace event count")
}

func TestCheckedInBaselineFingerprintIsStable(t *testing.T) {
	store := trace.NewStore()
	golden, err := store.Load(baselineTrace)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Clean(baselineTrace))
	require.NoError(t, err)
	fp, err := trace.Fingerprint(raw)
	require.NoError(t, err)
	assert.Equal(t, fp, golden.Fingerprint)
}
