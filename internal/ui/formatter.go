package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"dtp/internal/config"
	"dtp/internal/domain"
	"dtp/internal/parser"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintMetaStats reads and displays meta statistics from the JSON results file
func (f *Formatter) PrintMetaStats() error {
	outputPath := f.config.GetOutputPath()

	// Read JSON file
	data, err := os.ReadFile(outputPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}

	// Parse JSON
	var output domain.ReportOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	meta := output.Meta

	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                  Doctest Execution Statistics                 ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	// Print table
	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Modules")
	color.White("%-27d │\n", meta.TotalModules)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Attempted Examples")
	color.White("%-27d │\n", meta.AttemptedExamples)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Examples")
	color.Green("%-27d │\n", meta.PassedExamples)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Examples")
	color.Red("%-27d │\n", meta.FailedExamples)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Modules")
	color.Red("%-27d │\n", meta.FailedModules)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	// Print advisory warnings (load failures, empty runs)
	for _, warning := range meta.Warnings {
		color.Yellow("⚠ %s", warning)
	}

	// Print summary line
	fmt.Println()
	if meta.FailedExamples == 0 {
		color.Green("✓ All documentation examples passed!")
	} else {
		color.Red("✗ %d module(s) failed with %d example failure(s)", meta.FailedModules, meta.FailedExamples)
		fmt.Println()
		f.printFailedModulesTree(output.FailedModules, output.Details)
	}

	return nil
}

// TreeNode represents a node in the module namespace tree
type TreeNode struct {
	Name     string
	Children map[string]*TreeNode
	Failures []domain.ExampleFailure
	Result   *domain.ModuleResult
	IsLeaf   bool
}

// printFailedModulesTree prints failing modules grouped by namespace
func (f *Formatter) printFailedModulesTree(failed []domain.ModuleResult, failures []domain.ExampleFailure) {
	if len(failed) == 0 {
		return
	}

	// Group failure details by module name
	byModule := make(map[string][]domain.ExampleFailure)
	for _, failure := range failures {
		byModule[failure.Module] = append(byModule[failure.Module], failure)
	}

	root := &TreeNode{
		Name:     "",
		Children: make(map[string]*TreeNode),
	}

	// Build namespace tree from dotted module names
	for i := range failed {
		result := failed[i]
		parts := strings.Split(result.Name, ".")
		current := root

		for j, part := range parts {
			if part == "" {
				continue
			}
			if current.Children[part] == nil {
				current.Children[part] = &TreeNode{
					Name:     part,
					Children: make(map[string]*TreeNode),
				}
			}
			current = current.Children[part]

			if j == len(parts)-1 {
				current.IsLeaf = true
				current.Result = &failed[i]
				current.Failures = byModule[result.Name]
			}
		}
	}

	f.printTreeNode(root, "", true)
}

func (f *Formatter) printTreeNode(node *TreeNode, prefix string, isRoot bool) {
	// Sort children for consistent output
	var keys []string
	for key := range node.Children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		child := node.Children[key]
		isLastChild := i == len(keys)-1

		connector := prefix + "├── "
		childPrefix := prefix + "│   "
		if isLastChild {
			connector = prefix + "└── "
			childPrefix = prefix + "    "
		}
		if isRoot {
			connector = ""
			childPrefix = "    "
		}

		if child.IsLeaf {
			color.Yellow("%s%s (%d/%d failed)", connector, child.Name, child.Result.Failed, child.Result.Attempted)
			for _, failure := range child.Failures {
				color.Red("%s└── %s", childPrefix, firstLine(failure.Source))
			}
		} else {
			color.Cyan("%s%s", connector, child.Name)
		}

		f.printTreeNode(child, childPrefix, false)
	}
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx] + " ..."
	}
	return s
}

// PrintModuleList prints discovered modules, optionally with their example blocks.
func (f *Formatter) PrintModuleList(modules []domain.Module, showExamples bool) error {
	color.Green("Found %d module(s):\n", len(modules))

	for i, module := range modules {
		isLast := i == len(modules)-1
		if isLast {
			color.Cyan("└── %s", module.Name)
		} else {
			color.Cyan("├── %s", module.Name)
		}

		if !showExamples {
			continue
		}

		branch := "│   "
		if isLast {
			branch = "    "
		}

		blocks, err := moduleBlocks(module)
		if err != nil {
			fmt.Printf("%s└── %s\n", branch, color.RedString("(could not parse: %v)", err))
			continue
		}
		if len(blocks) == 0 {
			fmt.Printf("%s└── %s\n", branch, color.YellowString("(no examples found)"))
			continue
		}
		for j, block := range blocks {
			caseBranch := "├── "
			if j == len(blocks)-1 {
				caseBranch = "└── "
			}
			fmt.Printf("%s%s%s\n", branch, caseBranch, color.YellowString(firstLine(strings.Join(block.Source, "\n"))))
		}
	}

	return nil
}

func moduleBlocks(module domain.Module) ([]domain.ExampleBlock, error) {
	docs, err := parser.DocTexts(module.Dir)
	if err != nil {
		return nil, err
	}
	var blocks []domain.ExampleBlock
	for _, doc := range docs {
		blocks = append(blocks, parser.ExtractBlocks(doc)...)
	}
	return blocks, nil
}
