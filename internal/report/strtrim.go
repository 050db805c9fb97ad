package report

import (
	"strings"

	"github.com/paridad/conform/api"
)

func trimStrToRect(s string, maxHeight int, maxWidth int) string {
	if s == "" {
		return ""
	}
	// split into lines
	res := ""
	lines := strings.Split(s, "\n")
	if len(lines) > maxHeight {
		lines = lines[:maxHeight]
		lines = append(lines, "[...]")
	}
	for i, line := range lines {
		if i > 0 {
			res += "\n"
		}
		if len(line) > maxWidth {
			res += line[:maxWidth] + "[...]"
		} else {
			res += line
		}
	}
	return res
}

func trimResult(r *api.ExecResult) *api.ExecResult {
	if r == nil {
		return nil
	}
	return &api.ExecResult{
		ExitCode: r.ExitCode,
		Stdout:   trimStrToRect(r.Stdout, api.MaxOutputHeight, api.MaxOutputWidth),
		Stderr:   trimStrToRect(r.Stderr, api.MaxOutputHeight, api.MaxOutputWidth),
	}
}
