package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar creates and manages progress bars
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a new progress bar tracking module execution
func NewProgressBar(moduleCount int) *ProgressBar {
	bar := progressbar.NewOptions(moduleCount,
		progressbar.OptionSetDescription(
			color.CyanString("Running examples: ")+
				color.GreenString("[passed: 0")+
				" | "+
				color.RedString("failed: 0]"),
		),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Update advances the bar to the given module count and refreshes the
// running example pass/fail tallies
func (p *ProgressBar) Update(completedModules, passedExamples, failedExamples int) {
	p.bar.Set(completedModules)
	p.bar.Describe(
		color.CyanString("Running examples: ") +
			color.GreenString("[passed: %d", passedExamples) +
			" | " +
			color.RedString("failed: %d]", failedExamples),
	)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
