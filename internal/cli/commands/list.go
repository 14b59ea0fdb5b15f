package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"datacheck/internal/check"
	"datacheck/internal/config"
	"datacheck/internal/discovery"
	"datacheck/internal/ui"
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
	flags := lc.config.Flags

	// Without --scan, list the registered suites.
	if flags.ScanPath == "" {
		lc.formatter.PrintSuiteList(flags.ShowChecks)
		return nil
	}

	suite, ok := check.Lookup(flags.Suite)
	if !ok {
		return fmt.Errorf("listing data files needs a suite; use --test (available: %s)", strings.Join(check.Names(), ", "))
	}
	if suite.NeedsDB {
		return fmt.Errorf("suite %q runs against a database; there are no files to list", suite.Name)
	}

	extensions := lc.config.SuiteExtensions(suite.Name)
	if extensions == nil {
		extensions = suite.Extensions
	}
	files, err := lc.scanner.Scan(flags.ScanPath, extensions)
	if err != nil {
		return err
	}
	files = lc.filter.FilterByName(files, flags.NameFilter)

	if len(files) == 0 {
		color.Yellow("No data files found")
		return nil
	}

	lc.formatter.PrintFileList(files)
	return nil
}
