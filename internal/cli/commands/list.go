package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dtp/internal/config"
	"dtp/internal/discovery"
	"dtp/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	res, err := discovery.Resolve(lc.config.GetStartDir())
	if err != nil {
		return err
	}

	modules, err := discoverModules(lc.config, lc.scanner, lc.filter, res)
	if err != nil {
		return err
	}

	if len(modules) == 0 {
		color.Yellow("No modules found")
		return nil
	}

	return lc.formatter.PrintModuleList(modules, lc.config.Flags.Examples)
}
