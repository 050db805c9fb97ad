// Package equiv decides whether a candidate execution is observably
// equivalent to its reference execution.
package equiv

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/paridad/conform/api"
)

// Mismatch fields, in the order the policy checks them.
const (
	FieldExitCode       = "exit code"
	FieldStdout         = "stdout"
	FieldStderrToken    = "stderr error token"
	FieldStderrPresence = "stderr presence"
)

// Mismatch describes one equivalence failure. It carries both observed sides
// and the triggering argument vector so the failing invocation can be
// reproduced by hand.
type Mismatch struct {
	Scenario  string
	Args      []string
	Field     string
	Reference string
	Candidate string
	Diff      string
}

func (m *Mismatch) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s differs for args %q\n  reference: %s\n  candidate: %s",
		m.Scenario, m.Field, m.Args, m.Reference, m.Candidate)
	if m.Diff != "" {
		fmt.Fprintf(&b, "\n  diff (-reference +candidate):\n%s", m.Diff)
	}
	return b.String()
}

// Compare applies the equivalence policy to a reference/candidate result pair:
//
//  1. Exit codes must be equal exactly.
//  2. Stdout must be byte-for-byte equal, not trimmed or normalized. This is
//     the primary correctness oracle.
//  3. Stderr is compared only when both sides are non-empty; the candidate
//     then must contain an "error" token in any case (the two implementations
//     may format error messages differently, but both must signal one).
//     One-sided stderr is reported as its own mismatch rather than ignored.
//
// A nil return means the pair is equivalent.
func Compare(scenario string, args []string, ref, cand *api.ExecResult) *Mismatch {
	if ref.ExitCode != cand.ExitCode {
		return &Mismatch{
			Scenario:  scenario,
			Args:      args,
			Field:     FieldExitCode,
			Reference: fmt.Sprintf("%d", ref.ExitCode),
			Candidate: fmt.Sprintf("%d", cand.ExitCode),
		}
	}

	if ref.Stdout != cand.Stdout {
		return &Mismatch{
			Scenario:  scenario,
			Args:      args,
			Field:     FieldStdout,
			Reference: ref.Stdout,
			Candidate: cand.Stdout,
			Diff:      cmp.Diff(ref.Stdout, cand.Stdout),
		}
	}

	refErr := ref.Stderr != ""
	candErr := cand.Stderr != ""
	switch {
	case refErr && candErr:
		if !strings.Contains(strings.ToLower(cand.Stderr), "error") {
			return &Mismatch{
				Scenario:  scenario,
				Args:      args,
				Field:     FieldStderrToken,
				Reference: ref.Stderr,
				Candidate: cand.Stderr,
			}
		}
	case refErr != candErr:
		return &Mismatch{
			Scenario:  scenario,
			Args:      args,
			Field:     FieldStderrPresence,
			Reference: ref.Stderr,
			Candidate: cand.Stderr,
		}
	}

	return nil
}
