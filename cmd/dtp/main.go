package main

import (
	"fmt"
	"os"

	"dtp/internal/cli"
	"dtp/internal/cli/commands"
	"dtp/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "dtp",
		Short:   "Doctest processor for Go documentation examples",
		Long:    `A doctest processor for Go projects. Discover packages under a project's src tree, extract the example sessions embedded in their doc comments, execute them in an interpreter and report which modules drifted from their documentation.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
