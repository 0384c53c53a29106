package domain

import (
	"fmt"
	"strings"
)

// Report accumulates attempted/failed counts across all modules of one
// harness run. It exists only for the duration of a single invocation.
type Report struct {
	Modules  []ModuleResult   // Per-module counts, in execution order
	Failures []ExampleFailure // Every failed block, in the order recorded
	Warnings []string         // Non-fatal conditions (load failures, empty runs)

	Attempted int
	Failed    int
}

// NewReport creates an empty Report
func NewReport() *Report {
	return &Report{}
}

// Record adds one module's result to the aggregate counts
func (r *Report) Record(res ModuleResult) {
	r.Modules = append(r.Modules, res)
	r.Attempted += res.Attempted
	r.Failed += res.Failed
}

// Warn records a non-fatal condition without failing the run
func (r *Report) Warn(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// FailedModules returns the modules with at least one failure, in the
// order failures were recorded
func (r *Report) FailedModules() []ModuleResult {
	var failed []ModuleResult
	for _, m := range r.Modules {
		if m.Failed > 0 {
			failed = append(failed, m)
		}
	}
	return failed
}

// Ok reports whether the run passed: a run fails if and only if at least
// one example block failed. Zero discovered examples is not a failure.
func (r *Report) Ok() bool {
	return r.Failed == 0
}

// Summary formats the consolidated human-readable result of the run.
// For a failing run it lists totals and a per-module breakdown so a
// single invocation surfaces every broken example in one pass.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Doctest summary: %d examples across %d modules\n", r.Attempted, len(r.Modules))
	fmt.Fprintf(&b, "Failures: %d", r.Failed)
	if failed := r.FailedModules(); len(failed) > 0 {
		b.WriteString("\nFailed modules:")
		for _, m := range failed {
			fmt.Fprintf(&b, "\n  %s: %d/%d failed", m.Name, m.Failed, m.Attempted)
		}
	}
	return b.String()
}
