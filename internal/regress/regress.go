// Package regress checks a golden trace and its summary against fixed
// budgets and expected syscall patterns, and compares freshly captured
// traces against the stored baseline.
package regress

import (
	"fmt"
	"sort"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/paridad/conform/internal/trace"
)

// Budgets are ceilings, not targets: exceeding one fails, being far under
// never does. Defaults come from the trivial-CLI baseline: a couple of
// milliseconds and well under a hundred syscalls, generous enough for CI.
type Budgets struct {
	MaxWallTime time.Duration
	MaxSyscalls int
	Tolerance   int
}

func DefaultBudgets() Budgets {
	return Budgets{
		MaxWallTime: 2 * time.Millisecond,
		MaxSyscalls: 100,
		Tolerance:   10,
	}
}

// Syscall families accepted per pattern category. The allocator may choose
// among equivalent primitives, so each category is an allow-list rather than
// a single exact name.
var (
	outputFamily = mapset.NewSet("write", "writev", "pwrite64")
	allocFamily  = mapset.NewSet("brk", "mmap", "mmap2", "mremap")
)

// BudgetError reports a breached ceiling with the actual and budgeted values.
type BudgetError struct {
	Kind   string
	Actual string
	Budget string
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("%s budget exceeded: actual %s, budget %s", e.Kind, e.Actual, e.Budget)
}

// DriftError reports a live syscall count outside the tolerance window around
// the stored baseline.
type DriftError struct {
	Baseline  int
	Fresh     int
	Diff      int
	Tolerance int
	NamesHint string
}

func (e *DriftError) Error() string {
	msg := fmt.Sprintf("syscall count drifted beyond tolerance %d: baseline %d, fresh %d, diff %+d",
		e.Tolerance, e.Baseline, e.Fresh, e.Diff)
	if e.NamesHint != "" {
		msg += "; names differing between traces: " + e.NamesHint
	}
	return msg
}

// CheckExistence fails on a trace with no recorded events. An empty capture
// means the tracing pipeline is broken, never that the subject made no
// syscalls.
func CheckExistence(t *trace.GoldenTrace) error {
	if len(t.Syscalls) == 0 {
		return fmt.Errorf("golden trace contains no syscall events; the capture pipeline is broken")
	}
	return nil
}

// CheckTimeBudget fails when the summary's aggregate wall time reaches or
// exceeds the ceiling.
func CheckTimeBudget(sum *trace.Summary, max time.Duration) error {
	budgetMs := float64(max) / float64(time.Millisecond)
	if sum.TotalMillis() >= budgetMs {
		return &BudgetError{
			Kind:   "wall-time",
			Actual: fmt.Sprintf("%.3fms", sum.TotalMillis()),
			Budget: fmt.Sprintf("%.3fms", budgetMs),
		}
	}
	return nil
}

// CheckCallBudget fails when the summary's aggregate call count reaches or
// exceeds the ceiling.
func CheckCallBudget(sum *trace.Summary, max int) error {
	if sum.TotalCalls >= max {
		return &BudgetError{
			Kind:   "syscall-count",
			Actual: fmt.Sprintf("%d", sum.TotalCalls),
			Budget: fmt.Sprintf("%d", max),
		}
	}
	return nil
}

// CheckPatterns verifies the trace holds at least one output-family event
// (the subject must have written its result somewhere) and at least one
// allocation-family event.
func CheckPatterns(t *trace.GoldenTrace) error {
	names := eventNames(t)
	if names.Intersect(outputFamily).IsEmpty() {
		return fmt.Errorf("golden trace has no output syscall (expected one of %s)", familyList(outputFamily))
	}
	if names.Intersect(allocFamily).IsEmpty() {
		return fmt.Errorf("golden trace has no memory allocation syscall (expected one of %s)", familyList(allocFamily))
	}
	return nil
}

// CompareCounts checks a freshly captured trace against the stored baseline,
// allowing the counts to differ by tolerance in either direction to absorb
// environment noise.
func CompareCounts(baseline, fresh *trace.GoldenTrace, tolerance int) error {
	diff := len(fresh.Syscalls) - len(baseline.Syscalls)
	if diff >= -tolerance && diff <= tolerance {
		return nil
	}
	return &DriftError{
		Baseline:  len(baseline.Syscalls),
		Fresh:     len(fresh.Syscalls),
		Diff:      diff,
		Tolerance: tolerance,
		NamesHint: familyList(eventNames(baseline).SymmetricDifference(eventNames(fresh))),
	}
}

func eventNames(t *trace.GoldenTrace) mapset.Set[string] {
	names := mapset.NewSet[string]()
	for _, sc := range t.Syscalls {
		names.Add(sc.Name)
	}
	return names
}

func familyList(s mapset.Set[string]) string {
	names := s.ToSlice()
	sort.Strings(names)
	return strings.Join(names, ", ")
}
