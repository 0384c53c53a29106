package commands

import (
	"fmt"

	"dtp/internal/checker"
	"dtp/internal/config"
	"dtp/internal/discovery"
	"dtp/internal/domain"
	"dtp/internal/execution"
	"dtp/internal/storage"
	"dtp/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// Resolve the package root
	res, err := discovery.Resolve(rc.config.GetStartDir())
	if err != nil {
		return err
	}

	// Discover modules
	modules, err := discoverModules(rc.config, rc.scanner, rc.filter, res)
	if err != nil {
		return err
	}

	if len(modules) == 0 {
		color.Yellow("No modules to run")
		return nil
	}

	// Create and set progress bar
	progressBar := ui.NewProgressBar(len(modules))
	harness := execution.NewHarness(execution.NewLoader(res.ProjectRoot), checker.Default())
	harness.SetProgress(progressBar)

	// Execute examples
	report, duration, err := harness.Execute(modules)
	if err != nil {
		return err
	}

	// Save results
	if err := rc.storage.Save(report, duration); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	// Print stats
	if err := rc.formatter.PrintMetaStats(); err != nil {
		return err
	}

	if report.Ok() {
		return nil
	}

	// Optionally open the failures viewer before reporting the failed run
	if rc.config.Flags.OpenFailures {
		if output, loadErr := rc.storage.Load(); loadErr == nil {
			if viewErr := rc.viewer.View(output); viewErr != nil {
				color.Yellow("Could not open failures viewer: %v", viewErr)
			}
		}
	}

	return fmt.Errorf("%s", report.Summary())
}

// discoverModules resolves the module set for a run: the resolved package
// root plus any extra roots declared in the project manifest, scanned,
// merged and filtered by the name pattern.
func discoverModules(cfg *config.Config, scanner *discovery.Scanner, filter *discovery.Filter, res *discovery.Resolution) ([]domain.Module, error) {
	modules, err := scanner.Scan(res.RootDir, res.SrcDir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, m := range modules {
		seen[m.Name] = true
	}

	// Manifest-declared roots are additive and never fatal: a missing or
	// malformed manifest, or a broken entry, downgrades to an advisory.
	extra, err := discovery.LoadManifest(res.ProjectRoot)
	if err != nil {
		color.Yellow("Ignoring manifest: %v", err)
	}
	for _, root := range extra {
		found, err := scanner.Scan(root, res.SrcDir)
		if err != nil {
			color.Yellow("Ignoring manifest root %s: %v", root, err)
			continue
		}
		for _, m := range found {
			if seen[m.Name] {
				continue
			}
			seen[m.Name] = true
			modules = append(modules, m)
		}
	}

	return filter.FilterByName(modules, cfg.Flags.NameFilter), nil
}
