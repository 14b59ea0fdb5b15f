package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"datacheck/internal/cache"
	"datacheck/internal/check"
	"datacheck/internal/config"
	"datacheck/internal/db"
	"datacheck/internal/discovery"
	"datacheck/internal/domain"
	"datacheck/internal/execution"
	"datacheck/internal/storage"
	"datacheck/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	flags := rc.config.Flags

	suite, ok := check.Lookup(flags.Suite)
	if !ok {
		return fmt.Errorf("unknown check suite %q (available: %s)", flags.Suite, strings.Join(check.Names(), ", "))
	}

	var results []domain.FileResult
	var duration time.Duration
	var err error
	if suite.NeedsDB {
		results, duration, err = rc.runDatabaseSuite(suite)
	} else {
		results, duration, err = rc.runFileSuite(suite)
	}
	if err != nil || results == nil {
		return err
	}

	rc.report(results)

	if err := rc.storage.Save(suite.Name, results, duration, rc.config.Processors); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	if !flags.NativeOutput {
		output, err := rc.storage.Load()
		if err != nil {
			return err
		}
		rc.formatter.PrintMetaStats(output.Meta)
	}

	failedChecks := 0
	for _, r := range results {
		failedChecks += r.Failed
	}
	if failedChecks > 0 {
		return fmt.Errorf("%d check(s) failed", failedChecks)
	}
	return nil
}

// runDatabaseSuite runs a DB suite against the configured database.
func (rc *RunCommand) runDatabaseSuite(suite *check.Suite) ([]domain.FileResult, time.Duration, error) {
	flags := rc.config.Flags
	if len(flags.Files) > 0 || flags.ScanPath != "" {
		return nil, 0, fmt.Errorf("suite %q runs against a database; --file and --scan do not apply", suite.Name)
	}

	conn, err := db.Open(flags.Database, rc.config.ProjectPath)
	if err != nil {
		return nil, 0, err
	}
	defer conn.Close()

	runner := execution.NewRunner(rc.config, conn, nil)
	result := runner.Run(suite, "")
	result.Target = db.SchemaName(conn)
	for i := range result.Failures {
		result.Failures[i].Target = result.Target
	}
	for i := range result.Warnings {
		result.Warnings[i].Target = result.Target
	}
	return []domain.FileResult{result}, result.Duration, nil
}

// runFileSuite collects the target files and runs the suite across them.
func (rc *RunCommand) runFileSuite(suite *check.Suite) ([]domain.FileResult, time.Duration, error) {
	flags := rc.config.Flags
	if flags.Database != "" {
		return nil, 0, fmt.Errorf("suite %q runs against files; --database does not apply", suite.Name)
	}

	files := append([]string(nil), flags.Files...)
	if flags.ScanPath != "" {
		extensions := rc.config.SuiteExtensions(suite.Name)
		if extensions == nil {
			extensions = suite.Extensions
		}
		scanned, err := rc.scanner.Scan(flags.ScanPath, extensions)
		if err != nil {
			return nil, 0, err
		}
		files = append(files, scanned...)
	}
	files = rc.filter.FilterByName(files, flags.NameFilter)

	if len(files) == 0 {
		return nil, 0, fmt.Errorf("no files to check; provide --file or --scan")
	}

	var cacheManager *cache.Manager
	if !flags.NoCache {
		cacheManager = cache.NewManager(rc.config.CacheDir)
	}

	if flags.LoadResults {
		return nil, 0, rc.loadResults(suite, files, cacheManager)
	}

	runner := execution.NewRunner(rc.config, nil, cacheManager)
	pool := execution.NewWorkerPool(rc.config, runner)
	if !flags.NativeOutput && len(files) > 1 {
		pool.SetProgress(ui.NewProgressBar(len(files)))
	}

	return pool.ExecuteWithOptions(suite, files, flags.FailFast)
}

// loadResults prints the cached summaries for the files and runs nothing.
func (rc *RunCommand) loadResults(suite *check.Suite, files []string, cacheManager *cache.Manager) error {
	if cacheManager == nil {
		return fmt.Errorf("--load-results cannot be combined with --no-cache")
	}
	for _, file := range files {
		entry, err := cacheManager.Entry(suite.Name, file)
		if err != nil {
			return err
		}
		summary, ok := entry.Summary()
		if !ok {
			return fmt.Errorf("no previous results found for %s", file)
		}
		color.White("Loading previous results for %s:", file)
		fmt.Print(summary)
	}
	return nil
}

// report prints the run outcome in the selected output mode.
func (rc *RunCommand) report(results []domain.FileResult) {
	flags := rc.config.Flags

	rc.formatter.PrintCachedNotices(results)
	if flags.NativeOutput {
		rc.formatter.PrintNative(results)
		return
	}

	var warnings []domain.CheckWarning
	var failures []domain.CheckFailure
	for _, r := range results {
		warnings = append(warnings, r.Warnings...)
		failures = append(failures, r.Failures...)
	}
	if !flags.NoWarnings {
		rc.formatter.PrintWarningsSummary(warnings)
	}
	rc.formatter.PrintFailuresSummary(failures)
}
