package execution

import (
	"strings"
	"time"

	"dtp/internal/checker"
	"dtp/internal/domain"
	"dtp/internal/parser"
	"dtp/internal/ui"
)

// Harness executes discovered modules strictly sequentially: each module
// is fully loaded before its examples run, and aggregation happens as
// results arrive. Partial failures never abort the run; only resolution
// failures upstream can do that.
type Harness struct {
	loader   *Loader
	opts     checker.Options
	progress *ui.ProgressBar
}

// NewHarness creates a Harness executing modules through the given loader
func NewHarness(loader *Loader, opts checker.Options) *Harness {
	return &Harness{loader: loader, opts: opts}
}

// SetProgress sets the progress bar for the run
func (h *Harness) SetProgress(progress *ui.ProgressBar) {
	h.progress = progress
}

// Execute runs every module's examples and aggregates the report.
// Finding zero examples is an advisory condition, not a failure.
func (h *Harness) Execute(modules []domain.Module) (*domain.Report, time.Duration, error) {
	report := domain.NewReport()
	startTime := time.Now()

	for i, module := range modules {
		h.runUnit(h.loader.Unit(module), report)
		if h.progress != nil {
			h.progress.Update(i+1, report.Attempted-report.Failed, report.Failed)
		}
	}
	if h.progress != nil {
		h.progress.Finish()
	}

	if report.Attempted == 0 {
		report.Warn("no doctest examples found")
	}
	return report, time.Since(startTime), nil
}

// runUnit loads one unit and executes its example blocks. Load and parse
// failures are recorded as warnings; the unit is skipped and the run
// continues with the remaining modules.
func (h *Harness) runUnit(unit Loadable, report *domain.Report) {
	session, err := unit.NewSession()
	if err != nil {
		report.Warn("could not import %s: %v", unit.Name(), err)
		return
	}

	docs, err := unit.DocTexts()
	if err != nil {
		report.Warn("could not parse %s: %v", unit.Name(), err)
		return
	}

	var blocks []domain.ExampleBlock
	for _, doc := range docs {
		blocks = append(blocks, parser.ExtractBlocks(doc)...)
	}

	result := domain.ModuleResult{Name: unit.Name()}
	for _, block := range blocks {
		result.Attempted++
		got, runErr := session.Run(block.Source)
		if runErr != nil {
			result.Failed++
			report.Failures = append(report.Failures, domain.ExampleFailure{
				Module:  unit.Name(),
				File:    block.File,
				Line:    block.Line,
				Source:  strings.Join(block.Source, "\n"),
				Want:    block.Want,
				Got:     got,
				Message: runErr.Error(),
			})
			continue
		}
		if !checker.Match(block.Want, got, h.opts) {
			result.Failed++
			report.Failures = append(report.Failures, domain.ExampleFailure{
				Module: unit.Name(),
				File:   block.File,
				Line:   block.Line,
				Source: strings.Join(block.Source, "\n"),
				Want:   block.Want,
				Got:    got,
			})
		}
	}
	report.Record(result)
}

// RunBlocks executes example blocks in one shared session, used for
// README runs where every block of the document shares a namespace.
func RunBlocks(session *Session, blocks []domain.ExampleBlock, opts checker.Options) *domain.Report {
	report := domain.NewReport()

	result := domain.ModuleResult{Name: "README"}
	for _, block := range blocks {
		result.Attempted++
		got, err := session.Run(block.Source)
		ok := err == nil && checker.Match(block.Want, got, opts)
		if ok {
			continue
		}
		result.Failed++
		failure := domain.ExampleFailure{
			Module: result.Name,
			File:   block.File,
			Line:   block.Line,
			Source: strings.Join(block.Source, "\n"),
			Want:   block.Want,
			Got:    got,
		}
		if err != nil {
			failure.Message = err.Error()
		}
		report.Failures = append(report.Failures, failure)
	}
	report.Record(result)

	if report.Attempted == 0 {
		report.Warn("no doctest examples found")
	}
	return report
}
