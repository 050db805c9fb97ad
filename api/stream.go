package api

import "time"

// MsgType is a message type for streaming run reports
type MsgType string

// Streaming message type constants
const (
	StartRunMsg       MsgType = "run_start"
	ReachScenarioMsg  MsgType = "scenario_reach"
	IgnoreScenarioMsg MsgType = "scenario_ignore"
	FinishCaseMsg     MsgType = "case_finish"
	FinishRunMsg      MsgType = "run_finish"
)

// Stream size constraints for captured subject output
const (
	MaxOutputHeight = 40
	MaxOutputWidth  = 80
)

// Header is the common header for all streaming report messages
type Header struct {
	RunUuid string  `json:"run_uuid"`
	MsgType MsgType `json:"msg_type"`
}

// StartRun message sent when a conformance run begins
type StartRun struct {
	Header
	SystemInfo  string `json:"system_info"`
	StartedTime string `json:"started_time"`
}

// ReachScenario message sent when a scenario is reached
type ReachScenario struct {
	Header
	Scenario  string `json:"scenario"`
	Reference string `json:"reference"`
	Candidate string `json:"candidate"`
}

// IgnoreScenario message sent when a scenario is skipped
type IgnoreScenario struct {
	Header
	Scenario string `json:"scenario"`
	Reason   string `json:"reason"`
}

// FinishCase message sent when one argument vector has been judged
type FinishCase struct {
	Header
	Scenario  string      `json:"scenario"`
	Case      CaseResult  `json:"case"`
	Reference *ExecResult `json:"reference"`
	Candidate *ExecResult `json:"candidate"`
}

// FinishRun message sent when the whole run completes
type FinishRun struct {
	Header
	Failed        int     `json:"failed"`
	ErrorMessage  *string `json:"error_message"`
	InternalError bool    `json:"internal_error"`
}

// NewHeader creates the common message header
func NewHeader(runUuid string, msgType MsgType) Header {
	return Header{
		RunUuid: runUuid,
		MsgType: msgType,
	}
}

func NewStartRun(runUuid, systemInfo string) StartRun {
	return StartRun{
		Header:      NewHeader(runUuid, StartRunMsg),
		SystemInfo:  systemInfo,
		StartedTime: time.Now().Format(time.RFC3339),
	}
}

func NewReachScenario(runUuid, scenario, reference, candidate string) ReachScenario {
	return ReachScenario{
		Header:    NewHeader(runUuid, ReachScenarioMsg),
		Scenario:  scenario,
		Reference: reference,
		Candidate: candidate,
	}
}

func NewIgnoreScenario(runUuid, scenario, reason string) IgnoreScenario {
	return IgnoreScenario{
		Header:   NewHeader(runUuid, IgnoreScenarioMsg),
		Scenario: scenario,
		Reason:   reason,
	}
}

func NewFinishCase(runUuid, scenario string, c CaseResult, ref, cand *ExecResult) FinishCase {
	return FinishCase{
		Header:    NewHeader(runUuid, FinishCaseMsg),
		Scenario:  scenario,
		Case:      c,
		Reference: ref,
		Candidate: cand,
	}
}

func NewFinishRun(runUuid string, failed int, errorMessage *string, internalError bool) FinishRun {
	return FinishRun{
		Header:        NewHeader(runUuid, FinishRunMsg),
		Failed:        failed,
		ErrorMessage:  errorMessage,
		InternalError: internalError,
	}
}
