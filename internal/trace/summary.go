package trace

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// The summary table is owned by the external tracer and is versionless:
// whitespace-delimited columns in fixed positions, one row per syscall
// category plus a final aggregate row labeled "total", e.g.
//
//	100.00    0.000561           8        65         2 total
//
// Column meanings by index: 0 percent, 1 seconds, 2 usec/call, 3 calls,
// 4 errors, 5 label.
const (
	summaryColumns  = 6
	colTotalSeconds = 1
	colTotalCalls   = 3
	colErrors       = 4
	colLabel        = 5

	totalLabel = "total"
)

// SummaryRow is one parsed row of the summary table.
type SummaryRow struct {
	Percent      float64
	TotalSeconds float64
	Calls        int
	Errors       int
	Label        string
}

// Summary holds the tracer's derived statistics. The aggregate totals come
// from the final "total" row.
type Summary struct {
	Rows []SummaryRow

	TotalSeconds float64
	TotalCalls   int
	TotalErrors  int
}

// TotalMillis is the aggregate wall time in milliseconds.
func (s *Summary) TotalMillis() float64 {
	return s.TotalSeconds * 1000.0
}

// MalformedSummaryError means a summary row could not be parsed positionally.
// It names the offending line so the tracer output can be inspected directly.
type MalformedSummaryError struct {
	Path   string
	Line   string
	Reason string
}

func (e *MalformedSummaryError) Error() string {
	return fmt.Sprintf("malformed trace summary %s: %s in line %q", e.Path, e.Reason, e.Line)
}

// LoadSummary parses the summary table at path. Missing file, empty file and
// unparsable rows are distinct, reported errors.
func LoadSummary(path string) (*Summary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &UnavailableError{Path: path}
		}
		return nil, fmt.Errorf("failed to read trace summary %s: %w", path, err)
	}

	var lines []string
	for _, line := range strings.Split(string(raw), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("trace summary %s is empty", path)
	}

	// Only the final aggregate row is load-bearing. Earlier lines include
	// headers and separators the tracer prints around the table, so they are
	// collected best-effort.
	var rows []SummaryRow
	for _, line := range lines[:len(lines)-1] {
		if row, err := parseSummaryRow(path, line); err == nil {
			rows = append(rows, *row)
		}
	}

	last, err := parseSummaryRow(path, lines[len(lines)-1])
	if err != nil {
		return nil, err
	}
	if last.Label != totalLabel {
		return nil, &MalformedSummaryError{
			Path:   path,
			Line:   lines[len(lines)-1],
			Reason: fmt.Sprintf("last row is labeled %q, not %q", last.Label, totalLabel),
		}
	}
	rows = append(rows, *last)

	return &Summary{
		Rows:         rows,
		TotalSeconds: last.TotalSeconds,
		TotalCalls:   last.Calls,
		TotalErrors:  last.Errors,
	}, nil
}

func parseSummaryRow(path, line string) (*SummaryRow, error) {
	parts := strings.Fields(line)
	if len(parts) < summaryColumns {
		return nil, &MalformedSummaryError{
			Path:   path,
			Line:   line,
			Reason: fmt.Sprintf("expected %d columns, got %d", summaryColumns, len(parts)),
		}
	}

	percent, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, &MalformedSummaryError{Path: path, Line: line, Reason: "non-numeric percent column"}
	}
	seconds, err := strconv.ParseFloat(parts[colTotalSeconds], 64)
	if err != nil {
		return nil, &MalformedSummaryError{Path: path, Line: line, Reason: "non-numeric seconds column"}
	}
	calls, err := strconv.Atoi(parts[colTotalCalls])
	if err != nil {
		return nil, &MalformedSummaryError{Path: path, Line: line, Reason: "non-numeric calls column"}
	}
	errs, err := strconv.Atoi(parts[colErrors])
	if err != nil {
		return nil, &MalformedSummaryError{Path: path, Line: line, Reason: "non-numeric errors column"}
	}

	return &SummaryRow{
		Percent:      percent,
		TotalSeconds: seconds,
		Calls:        calls,
		Errors:       errs,
		Label:        parts[colLabel],
	}, nil
}
