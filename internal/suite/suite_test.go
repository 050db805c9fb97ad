package suite_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/paridad/conform/api"
	"github.com/paridad/conform/internal/catalog"
	"github.com/paridad/conform/internal/report/mocks"
	"github.com/paridad/conform/internal/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const refGreet = `#!/bin/sh
if [ "$1" = "--name" ]; then
	echo "Hello, $2!"
	exit 0
fi
echo "usage error: unknown flag $1" 1>&2
exit 2
`

const candGreet = `#!/bin/sh
if [ "$1" = "--name" ]; then
	echo "Hello, $2!"
	exit 0
fi
echo "error: unexpected argument $1" 1>&2
exit 2
`

const candGreetWrong = `#!/bin/sh
echo "Hi, $2."
exit 0
`

const refCat = `#!/bin/sh
cat "$2"
`

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0755))
	return path
}

// caseCollector records FinishCase verdicts from the mock reporter.
type caseCollector struct {
	mu    sync.Mutex
	cases []api.CaseResult
}

func (c *caseCollector) add(_ string, res api.CaseResult, _, _ *api.ExecResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cases = append(c.cases, res)
}

func (c *caseCollector) verdicts() []api.Verdict {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]api.Verdict, 0, len(c.cases))
	for _, cr := range c.cases {
		out = append(out, cr.Verdict)
	}
	return out
}

func newReporterMock(t *testing.T, collector *caseCollector) *mocks.MockReporter {
	ctrl := gomock.NewController(t)
	rep := mocks.NewMockReporter(ctrl)
	rep.EXPECT().ReachScenario(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	rep.EXPECT().FinishCase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Do(collector.add).AnyTimes()
	return rep
}

func TestRunEquivalentScenario(t *testing.T) {
	dir := t.TempDir()
	sc := catalog.Scenario{
		Name:     "greet",
		RefPath:  writeScript(t, dir, "greet_ref", refGreet),
		CandPath: writeScript(t, dir, "greet_cand", candGreet),
		ArgVectors: [][]string{
			{"--name", "Alice"},
			{"--bogus"},
		},
	}

	collector := &caseCollector{}
	s := suite.New(newReporterMock(t, collector), suite.Options{})

	failed, err := s.Run(context.Background(), []catalog.Scenario{sc})
	require.NoError(t, err)
	assert.Equal(t, 0, failed)
	assert.Equal(t, []api.Verdict{api.VerdictPass, api.VerdictPass}, collector.verdicts())
}

func TestRunDivergentStdoutFails(t *testing.T) {
	dir := t.TempDir()
	sc := catalog.Scenario{
		Name:       "greet",
		RefPath:    writeScript(t, dir, "greet_ref", refGreet),
		CandPath:   writeScript(t, dir, "greet_cand", candGreetWrong),
		ArgVectors: [][]string{{"--name", "Alice"}},
	}

	collector := &caseCollector{}
	s := suite.New(newReporterMock(t, collector), suite.Options{})

	failed, err := s.Run(context.Background(), []catalog.Scenario{sc})
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	require.Len(t, collector.cases, 1)
	assert.Equal(t, api.VerdictFail, collector.cases[0].Verdict)
	assert.Contains(t, collector.cases[0].Detail, "stdout")
}

func TestRunMissingCandidateFailsWithPath(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "not_built")
	sc := catalog.Scenario{
		Name:       "greet",
		RefPath:    writeScript(t, dir, "greet_ref", refGreet),
		CandPath:   missing,
		ArgVectors: [][]string{{"--name", "Alice"}, {"--name", "Bob"}},
	}

	collector := &caseCollector{}
	s := suite.New(newReporterMock(t, collector), suite.Options{})

	failed, err := s.Run(context.Background(), []catalog.Scenario{sc})
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	// The scenario aborts after the spawn failure instead of retrying the
	// remaining vectors against a binary that is not there.
	require.Len(t, collector.cases, 1)
	assert.Contains(t, collector.cases[0].Detail, missing)
}

func TestRunFailingScenarioDoesNotAbortSiblings(t *testing.T) {
	dir := t.TempDir()
	ref := writeScript(t, dir, "greet_ref", refGreet)
	good := writeScript(t, dir, "greet_cand", candGreet)
	bad := writeScript(t, dir, "greet_bad", candGreetWrong)

	scenarios := []catalog.Scenario{
		{Name: "bad", RefPath: ref, CandPath: bad, ArgVectors: [][]string{{"--name", "Alice"}}},
		{Name: "good", RefPath: ref, CandPath: good, ArgVectors: [][]string{{"--name", "Alice"}}},
	}

	collector := &caseCollector{}
	s := suite.New(newReporterMock(t, collector), suite.Options{})

	failed, err := s.Run(context.Background(), scenarios)
	require.NoError(t, err)
	assert.Equal(t, 1, failed)
	assert.Len(t, collector.cases, 2)
}

func TestRunMaterializesFileArguments(t *testing.T) {
	dir := t.TempDir()
	sc := catalog.Scenario{
		Name:       "stdlib",
		RefPath:    writeScript(t, dir, "cat_ref", refCat),
		CandPath:   writeScript(t, dir, "cat_cand", refCat),
		ArgVectors: [][]string{{"--file", "@file:Hello World"}},
	}

	collector := &caseCollector{}
	s := suite.New(newReporterMock(t, collector), suite.Options{})

	failed, err := s.Run(context.Background(), []catalog.Scenario{sc})
	require.NoError(t, err)
	assert.Equal(t, 0, failed)

	require.Len(t, collector.cases, 1)
	// The placeholder was replaced by a real path, not passed through.
	assert.NotContains(t, collector.cases[0].Args[1], "@file:")
	assert.NoFileExists(t, collector.cases[0].Args[1], "scenario temp dir should be cleaned up")
}

func TestRunScenarioWithoutVectorsIsIgnored(t *testing.T) {
	dir := t.TempDir()
	sc := catalog.Scenario{
		Name:     "greet",
		RefPath:  writeScript(t, dir, "greet_ref", refGreet),
		CandPath: writeScript(t, dir, "greet_cand", candGreet),
	}

	ctrl := gomock.NewController(t)
	rep := mocks.NewMockReporter(ctrl)
	rep.EXPECT().IgnoreScenario("greet", gomock.Any()).Times(1)

	failed, err := suite.New(rep, suite.Options{}).
		Run(context.Background(), []catalog.Scenario{sc})
	require.NoError(t, err)
	assert.Equal(t, 0, failed)
}

func TestRunParallelScenarios(t *testing.T) {
	dir := t.TempDir()
	ref := writeScript(t, dir, "greet_ref", refGreet)
	cand := writeScript(t, dir, "greet_cand", candGreet)

	var scenarios []catalog.Scenario
	for _, name := range []string{"a", "b", "c", "d"} {
		scenarios = append(scenarios, catalog.Scenario{
			Name:       name,
			RefPath:    ref,
			CandPath:   cand,
			ArgVectors: [][]string{{"--name", "Alice"}, {"--bogus"}},
		})
	}

	collector := &caseCollector{}
	s := suite.New(newReporterMock(t, collector), suite.Options{Parallel: true})

	failed, err := s.Run(context.Background(), scenarios)
	require.NoError(t, err)
	assert.Equal(t, 0, failed)
	assert.Len(t, collector.cases, 8)
}
