package commands

import (
	"datacheck/internal/cli"
	"datacheck/internal/config"
	"datacheck/internal/discovery"
	"datacheck/internal/storage"
	"datacheck/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	scanner := discovery.NewScanner(cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	viewer := ui.NewFailureViewer(cfg, jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, scanner, filter, jsonStorage, formatter),
		List:     NewListCommand(cfg, scanner, filter, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a check suite against data files or a database",
		Long:  "Execute the named check suite against the given files (or a scanned directory), or against a database for DB suites",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			if flags.Processors > 0 {
				cfg.Processors = flags.Processors
			}
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.Suite, "test", "t", "", "Name of the check suite to run (e.g. 'fasta')")
	runCmd.Flags().StringSliceVarP(&flags.Files, "file", "f", nil, "Path to a file to be tested (repeatable)")
	runCmd.Flags().StringVar(&flags.ScanPath, "scan", "", "Directory to scan for data files matching the suite's extensions")
	runCmd.Flags().StringVar(&flags.NameFilter, "filter", "", "Filter scanned files by name pattern (supports wildcards, e.g. '*pass.fasta')")
	runCmd.Flags().StringVar(&flags.Database, "database", "", "MySQL DSN for database suites (falls back to DB_* env / .env)")
	runCmd.Flags().IntVarP(&flags.Processors, "processors", "p", 0, "Number of workers for multi-file runs")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first failing file")
	runCmd.Flags().BoolVar(&flags.NoWarnings, "no-warnings", false, "Disable the warnings summary")
	runCmd.Flags().BoolVar(&flags.NativeOutput, "native-output", false, "Per-check output instead of grouped summaries")
	runCmd.Flags().BoolVar(&flags.NoCache, "no-cache", false, "Disable caching of results")
	runCmd.Flags().BoolVar(&flags.LoadResults, "load-results", false, "Print previously cached results and exit")
	_ = runCmd.MarkFlagRequired("test")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered check suites",
		Long:  "List registered check suites and their checks, or the data files a scan would pick up",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().BoolVarP(&flags.ShowChecks, "checks", "c", false, "List the check functions of each suite")
	listCmd.Flags().StringVarP(&flags.Suite, "test", "t", "", "Suite whose data files to list (with --scan)")
	listCmd.Flags().StringVar(&flags.ScanPath, "scan", "", "Directory to scan for data files")
	listCmd.Flags().StringVar(&flags.NameFilter, "filter", "", "Filter scanned files by name pattern")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View check failures interactively",
		Long:  "Display check failures from the last run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
