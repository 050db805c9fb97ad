package report

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/paridad/conform/api"
)

// TerminalReporter prints run progress to stdout.
type TerminalReporter struct {
	StartedAt time.Time

	pass *color.Color
	fail *color.Color
	warn *color.Color
}

func NewTerminal() *TerminalReporter {
	return &TerminalReporter{
		StartedAt: time.Now(),
		pass:      color.New(color.FgGreen),
		fail:      color.New(color.FgRed, color.Bold),
		warn:      color.New(color.FgYellow),
	}
}

func (t *TerminalReporter) StartRun(systemInfo string) {
	fmt.Println("== Conformance run started ==")
	if systemInfo != "" {
		fmt.Println(systemInfo)
	}
}

func (t *TerminalReporter) ReachScenario(scenario, reference, candidate string) {
	fmt.Printf("-> %s (ref=%s cand=%s)\n", scenario, reference, candidate)
}

func (t *TerminalReporter) IgnoreScenario(scenario, reason string) {
	t.warn.Printf("-> %s skipped: %s\n", scenario, reason)
}

func (t *TerminalReporter) FinishCase(scenario string, c api.CaseResult, reference, candidate *api.ExecResult) {
	if c.Verdict == api.VerdictPass {
		t.pass.Printf("  PASS %s %q\n", scenario, c.Args)
		return
	}
	t.fail.Printf("  FAIL %s %q\n", scenario, c.Args)
	if c.Detail != "" {
		fmt.Printf("  %s\n", c.Detail)
	}
}

func (t *TerminalReporter) FinishRunWithInternalError(msg string) {
	t.fail.Printf("== Internal error: %s ==\n", msg)
}

func (t *TerminalReporter) FinishRun(failed int) {
	dur := time.Since(t.StartedAt).Round(time.Millisecond)
	if failed == 0 {
		t.pass.Printf("== Run finished in %s, all scenarios equivalent ==\n", dur)
	} else {
		t.fail.Printf("== Run finished in %s with %d failing case(s) ==\n", dur, failed)
	}
}
