package api

// SignalExitCode is the exit-code sentinel recorded when a subject was
// terminated by a signal and therefore never produced a real exit code.
const SignalExitCode = -1

// ExecResult is the externally observable outcome of one subject invocation.
// It is immutable once captured; the comparison that produced it is its only
// owner.
type ExecResult struct {
	ExitCode int    `json:"exit"`
	Stdout   string `json:"out"`
	Stderr   string `json:"err"`
}

// Signaled reports whether the subject died to a signal instead of exiting.
func (r *ExecResult) Signaled() bool {
	return r.ExitCode == SignalExitCode
}

// Verdict is the outcome of a single (scenario, argv) equivalence case.
type Verdict string

const (
	VerdictPass Verdict = "pass"
	VerdictFail Verdict = "fail"
)

// CaseResult pairs one argument vector with its verdict and, on failure,
// the diagnostic produced by the comparator.
type CaseResult struct {
	Args    []string `json:"args"`
	Verdict Verdict  `json:"verdict"`
	Detail  string   `json:"detail,omitempty"`
}
