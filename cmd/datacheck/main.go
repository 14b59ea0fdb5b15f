package main

import (
	"fmt"
	"os"

	"datacheck/internal/cli"
	"datacheck/internal/cli/commands"
	"datacheck/internal/config"
	_ "datacheck/internal/suites"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:          "datacheck",
		Short:        "Genomics data file and database checker",
		Long:         `Validate genomics data files (FASTA, VCF) and metadata databases with named check suites. Soft violations are reported as warnings, hard violations as failures.`,
		Version:      version,
		SilenceUsage: true,
	}

	// Create initial config with defaults
	cfg := config.New()
	if err := cfg.LoadSettings(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

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
