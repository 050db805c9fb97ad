package regress

import (
	"context"
	"fmt"
	"strings"

	"github.com/paridad/conform/internal/runner"
	"github.com/paridad/conform/internal/trace"
)

// DefaultTracer is the external syscall tracer consumed by live captures.
// The harness only invokes it and parses its output; interception itself is
// the tracer's job.
const DefaultTracer = "renacer"

// Capturer produces fresh traces of a subject by running it under the
// external tracer.
type Capturer struct {
	tracerPath string
}

func NewCapturer(tracerPath string) *Capturer {
	if tracerPath == "" {
		tracerPath = DefaultTracer
	}
	return &Capturer{tracerPath: tracerPath}
}

// Capture runs the subject under the tracer and parses the resulting trace
// document, schema validation included. The subject's own stdout precedes the
// JSON document on the tracer's stdout and is stripped.
func (c *Capturer) Capture(ctx context.Context, binPath string, args []string) (*trace.GoldenTrace, error) {
	tracerArgs := append([]string{"--format", "json", "--", binPath}, args...)

	res, err := runner.Run(ctx, c.tracerPath, tracerArgs, "")
	if err != nil {
		return nil, fmt.Errorf("failed to run tracer: %w", err)
	}
	if res.ExitCode != 0 {
		return nil, fmt.Errorf("tracer %s exited with code %d: %s", c.tracerPath, res.ExitCode, res.Stderr)
	}

	raw, err := extractTraceDocument(res.Stdout)
	if err != nil {
		return nil, err
	}
	return trace.Parse([]byte(raw))
}

// extractTraceDocument drops subject output printed before the trace: the
// document starts at the first line opening a JSON object.
func extractTraceDocument(stdout string) (string, error) {
	lines := strings.Split(stdout, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "{") {
			return strings.Join(lines[i:], "\n"), nil
		}
	}
	return "", fmt.Errorf("tracer output contains no JSON trace document")
}
