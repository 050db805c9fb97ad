package report

import (
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/paridad/conform/api"
)

type natsReporter struct {
	nc      *nats.Conn
	subject string
	runUuid string
}

// NewNats creates a reporter that streams run messages to the given subject.
// Publishing is best-effort: a sink outage must not fail a conformance run.
func NewNats(nc *nats.Conn, runUuid string, subject string) Reporter {
	return &natsReporter{
		nc:      nc,
		subject: subject,
		runUuid: runUuid,
	}
}

func (s *natsReporter) StartRun(systemInfo string) {
	s.send(api.NewStartRun(s.runUuid, systemInfo))
}

func (s *natsReporter) ReachScenario(scenario, reference, candidate string) {
	s.send(api.NewReachScenario(s.runUuid, scenario, reference, candidate))
}

func (s *natsReporter) IgnoreScenario(scenario, reason string) {
	s.send(api.NewIgnoreScenario(s.runUuid, scenario, reason))
}

func (s *natsReporter) FinishCase(scenario string, c api.CaseResult, reference, candidate *api.ExecResult) {
	s.send(api.NewFinishCase(s.runUuid, scenario, c, trimResult(reference), trimResult(candidate)))
}

func (s *natsReporter) FinishRunWithInternalError(msg string) {
	s.send(api.NewFinishRun(s.runUuid, 0, &msg, true))
}

func (s *natsReporter) FinishRun(failed int) {
	s.send(api.NewFinishRun(s.runUuid, failed, nil, false))
}

func (s *natsReporter) send(msg interface{}) {
	b, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to marshal report message", "error", err)
		return
	}

	if err := s.nc.Publish(s.subject, b); err != nil {
		slog.Error("failed to publish report message to NATS", "error", err)
	}
}
