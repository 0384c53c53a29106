package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dtp/internal/checker"
	"dtp/internal/config"
	"dtp/internal/discovery"
	"dtp/internal/execution"
	"dtp/internal/parser"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ReadmeFileName is the file the readme command looks for.
const ReadmeFileName = "README.md"

// ErrNoReadme is returned when no README exists in any ancestor of the
// starting path.
var ErrNoReadme = errors.New("no README.md found in any parent directory")

// ReadmeCommand handles the readme command
type ReadmeCommand struct {
	config *config.Config
}

// NewReadmeCommand creates a new ReadmeCommand
func NewReadmeCommand(cfg *config.Config) *ReadmeCommand {
	return &ReadmeCommand{config: cfg}
}

// Execute runs the command
func (rc *ReadmeCommand) Execute(cmd *cobra.Command, args []string) error {
	readmePath, err := findReadme(rc.config.GetStartDir())
	if err != nil {
		return err
	}

	content, err := os.ReadFile(readmePath)
	if err != nil {
		return err
	}

	blocks := parser.ExtractBlocks(parser.DocText{
		File: readmePath,
		Line: 1,
		Text: string(content),
	})
	if len(blocks) == 0 {
		color.Yellow("No examples found in %s", readmePath)
		return nil
	}

	// README examples may import project packages, so the interpreter's
	// search path points at the resolved project root when one exists.
	projectRoot := filepath.Dir(readmePath)
	if res, err := discovery.Resolve(rc.config.GetStartDir()); err == nil {
		projectRoot = res.ProjectRoot
	}

	session, err := execution.NewLoader(projectRoot).Session()
	if err != nil {
		return err
	}

	report := execution.RunBlocks(session, blocks, checker.FloatTolerant())

	for _, warning := range report.Warnings {
		color.Yellow("⚠ %s", warning)
	}

	if report.Ok() {
		color.Green("✓ %d README examples passed", report.Attempted)
		return nil
	}

	for _, failure := range report.Failures {
		color.Red("✗ %s:%d", failure.File, failure.Line)
		for _, line := range strings.Split(failure.Source, "\n") {
			fmt.Printf("    >>> %s\n", line)
		}
		if failure.Message != "" {
			fmt.Printf("    error: %s\n", failure.Message)
		} else {
			fmt.Printf("    expected: %s\n", failure.Want)
			fmt.Printf("    got:      %s\n", failure.Got)
		}
	}

	return fmt.Errorf("%s", report.Summary())
}

// findReadme walks up from startDir until it finds a README.md.
func findReadme(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, ReadmeFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoReadme
		}
		dir = parent
	}
}
