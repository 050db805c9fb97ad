// Package runner spawns subject executables and captures their externally
// observable behavior: exit code, stdout and stderr.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/paridad/conform/api"
)

// SpawnError means the subject could not be started at all: the path does not
// exist, is not executable, or the fork/exec itself failed. It names the
// attempted path so a missing build artifact is diagnosable.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn subject %s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// Run executes the subject at path with the given argument vector and blocks
// until it terminates and both streams are fully drained. Stdout and stderr
// are captured independently, never interleaved. A subject that exits with a
// non-zero code is not an error; a subject that cannot be started is a
// *SpawnError. Termination by signal yields api.SignalExitCode, never a
// fabricated zero.
func Run(ctx context.Context, path string, args []string, workDir string) (*api.ExecResult, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	if workDir != "" {
		cmd.Dir = workDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, &SpawnError{Path: path, Err: err}
		}
	}

	res := &api.ExecResult{
		ExitCode: api.SignalExitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
	if state := cmd.ProcessState; state != nil && state.Exited() {
		res.ExitCode = state.ExitCode()
	}
	return res, nil
}
