package report

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/paridad/conform/api"
)

type sqsReporter struct {
	sqsClient *sqs.Client
	queueUrl  string
	runUuid   string
}

// NewSqs creates a reporter that sends run messages to an SQS queue.
func NewSqs(client *sqs.Client, runUuid string, queueUrl string) Reporter {
	return &sqsReporter{
		sqsClient: client,
		queueUrl:  queueUrl,
		runUuid:   runUuid,
	}
}

func (s *sqsReporter) StartRun(systemInfo string) {
	s.send(api.NewStartRun(s.runUuid, systemInfo))
}

func (s *sqsReporter) ReachScenario(scenario, reference, candidate string) {
	s.send(api.NewReachScenario(s.runUuid, scenario, reference, candidate))
}

func (s *sqsReporter) IgnoreScenario(scenario, reason string) {
	s.send(api.NewIgnoreScenario(s.runUuid, scenario, reason))
}

func (s *sqsReporter) FinishCase(scenario string, c api.CaseResult, reference, candidate *api.ExecResult) {
	s.send(api.NewFinishCase(s.runUuid, scenario, c, trimResult(reference), trimResult(candidate)))
}

func (s *sqsReporter) FinishRunWithInternalError(msg string) {
	s.send(api.NewFinishRun(s.runUuid, 0, &msg, true))
}

func (s *sqsReporter) FinishRun(failed int) {
	s.send(api.NewFinishRun(s.runUuid, failed, nil, false))
}

func (s *sqsReporter) send(msg interface{}) {
	b, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to marshal report message", "error", err)
		return
	}

	_, err = s.sqsClient.SendMessage(context.TODO(), &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.queueUrl),
		MessageBody: aws.String(string(b)),
	})
	if err != nil {
		slog.Error("failed to send report message to SQS", "error", err)
	}
}
