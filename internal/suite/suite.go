// Package suite drives equivalence scenarios: for every catalog entry it runs
// the reference and candidate subjects over each argument vector and streams
// verdicts to a reporter.
package suite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/paridad/conform/api"
	"github.com/paridad/conform/internal/catalog"
	"github.com/paridad/conform/internal/equiv"
	"github.com/paridad/conform/internal/report"
	"github.com/paridad/conform/internal/runner"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	// Parallel fans scenarios out over an errgroup. Scenarios are isolated
	// (own subprocesses, own temp dir), so ordering across them is free; the
	// reference run always precedes the candidate run within a scenario.
	Parallel bool
}

type Suite struct {
	reporter report.Reporter
	opts     Options
}

func New(reporter report.Reporter, opts Options) *Suite {
	return &Suite{reporter: reporter, opts: opts}
}

// Run executes all scenarios and returns the number of failing cases. The
// returned error is reserved for harness-internal faults; subject mismatches
// only increment the count.
func (s *Suite) Run(ctx context.Context, scenarios []catalog.Scenario) (int, error) {
	failed := 0
	var mu sync.Mutex

	runOne := func(sc catalog.Scenario) error {
		n, err := s.runScenario(ctx, sc)
		mu.Lock()
		failed += n
		mu.Unlock()
		return err
	}

	if s.opts.Parallel {
		errs, _ := errgroup.WithContext(ctx)
		for _, sc := range scenarios {
			errs.Go(func() error { return runOne(sc) })
		}
		if err := errs.Wait(); err != nil {
			return failed, err
		}
		return failed, nil
	}

	for _, sc := range scenarios {
		if err := runOne(sc); err != nil {
			return failed, err
		}
	}
	return failed, nil
}

// runScenario judges every argument vector of one scenario. A failing case
// never aborts sibling scenarios; a missing subject fails the whole scenario
// with the attempted path in the verdict.
func (s *Suite) runScenario(ctx context.Context, sc catalog.Scenario) (failed int, err error) {
	if len(sc.ArgVectors) == 0 {
		s.reporter.IgnoreScenario(sc.Name, "no argument vectors")
		return 0, nil
	}

	s.reporter.ReachScenario(sc.Name, sc.RefPath, sc.CandPath)

	tmpDir, err := os.MkdirTemp("", "conform-"+sc.Name+"-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create scenario temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	refBin, refLead := sc.RefCommand()

	for i, argv := range sc.ArgVectors {
		args, err := materializeFileArgs(tmpDir, i, argv)
		if err != nil {
			return failed, err
		}

		refRes, err := runner.Run(ctx, refBin, append(refLead, args...), "")
		if err != nil {
			failed++
			s.reportCaseFail(sc.Name, args, err.Error(), nil, nil)
			return failed, nil
		}

		candRes, err := runner.Run(ctx, sc.CandPath, args, "")
		if err != nil {
			failed++
			s.reportCaseFail(sc.Name, args, err.Error(), refRes, nil)
			return failed, nil
		}

		if m := equiv.Compare(sc.Name, args, refRes, candRes); m != nil {
			failed++
			s.reportCaseFail(sc.Name, args, m.Error(), refRes, candRes)
			continue
		}

		s.reporter.FinishCase(sc.Name, api.CaseResult{
			Args:    args,
			Verdict: api.VerdictPass,
		}, refRes, candRes)
	}

	return failed, nil
}

func (s *Suite) reportCaseFail(scenario string, args []string, detail string, ref, cand *api.ExecResult) {
	s.reporter.FinishCase(scenario, api.CaseResult{
		Args:    args,
		Verdict: api.VerdictFail,
		Detail:  detail,
	}, ref, cand)
}

// materializeFileArgs writes @file: argument payloads into the scenario's
// temp dir and substitutes their paths, leaving other arguments untouched.
func materializeFileArgs(tmpDir string, vectorIdx int, argv []string) ([]string, error) {
	out := make([]string, len(argv))
	for i, arg := range argv {
		if !strings.HasPrefix(arg, catalog.FileArgPrefix) {
			out[i] = arg
			continue
		}
		content := strings.TrimPrefix(arg, catalog.FileArgPrefix)
		path := filepath.Join(tmpDir, fmt.Sprintf("arg-%d-%d.txt", vectorIdx, i))
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return nil, fmt.Errorf("failed to materialize file argument: %w", err)
		}
		out[i] = path
	}
	return out, nil
}
