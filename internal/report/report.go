// Package report streams conformance-run progress and verdicts to pluggable
// sinks: a terminal, a NATS subject, or an SQS queue.
package report

import "github.com/paridad/conform/api"

// Reporter receives run progress and per-case verdicts.
type Reporter interface {
	StartRun(systemInfo string)
	ReachScenario(scenario, reference, candidate string)
	IgnoreScenario(scenario, reason string)
	FinishCase(scenario string, c api.CaseResult, reference, candidate *api.ExecResult)
	FinishRunWithInternalError(msg string)
	FinishRun(failed int)
}
