package commands

import (
	"dtp/internal/cli"
	"dtp/internal/config"
	"dtp/internal/discovery"
	"dtp/internal/storage"
	"dtp/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Readme   *ReadmeCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	errorViewer := ui.NewErrorViewer(cfg, jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, scanner, filter, jsonStorage, formatter, errorViewer),
		List:     NewListCommand(cfg, scanner, filter, formatter),
		Readme:   NewReadmeCommand(cfg),
		Failures: NewFailuresCommand(cfg, jsonStorage, errorViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run documentation examples",
		Long:  "Discover modules under the project's src tree and execute their embedded documentation examples",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.SrcPath, "src-path", "s", "", "Path to the folder where package discovery should start")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter modules by name pattern (supports wildcards, e.g. 'config.*' or '*templates*')")
	runCmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failures viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered modules",
		Long:  "Discover and list modules without executing their examples",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.SrcPath, "src-path", "s", "", "Path to the folder where package discovery should start")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter modules by name pattern (supports wildcards, e.g. 'config.*' or '*templates*')")
	listCmd.Flags().BoolVarP(&flags.Examples, "examples", "e", false, "List example blocks instead of just module names")
	rootCmd.AddCommand(listCmd)

	// Readme command
	readmeCmd := &cobra.Command{
		Use:   "readme",
		Short: "Run README examples",
		Long:  "Locate the project README and execute its embedded examples with a float-tolerant output checker",
		RunE:  c.Readme.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	rootCmd.AddCommand(readmeCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View example failures interactively",
		Long:  "Display example failures from the last run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
