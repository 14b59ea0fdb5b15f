package ui

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fatih/color"

	"datacheck/internal/check"
	"datacheck/internal/config"
	"datacheck/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintWarningsSummary prints the grouped warnings block.
func (f *Formatter) PrintWarningsSummary(warnings []domain.CheckWarning) {
	if len(warnings) == 0 {
		return
	}
	yellow := color.New(color.FgYellow)
	yellow.Println("========================= Warnings summary =========================")
	for _, w := range warnings {
		yellow.Println(w.String())
	}
	if len(warnings) > 1 {
		yellow.Printf("========================= There are %d warnings =========================\n", len(warnings))
	} else {
		yellow.Println("========================= There is 1 warning =========================")
	}
}

// PrintFailuresSummary prints the grouped failures block.
func (f *Formatter) PrintFailuresSummary(failures []domain.CheckFailure) {
	if len(failures) == 0 {
		return
	}
	red := color.New(color.FgRed)
	red.Println("========================= Failures summary =========================")
	for _, fl := range failures {
		red.Println(fl.String())
	}
	if len(failures) > 1 {
		red.Printf("========================= There are %d failures =========================\n", len(failures))
	} else {
		red.Println("========================= There is 1 failure =========================")
	}
}

// PrintNative prints one line per executed check, in execution order, without
// the grouped summary blocks.
func (f *Formatter) PrintNative(results []domain.FileResult) {
	for _, r := range results {
		if r.Cached {
			color.White("%s (cached)", r.Target)
			fmt.Print(r.CachedSummary)
			continue
		}
		color.White("%s", r.Target)
		for _, w := range r.Warnings {
			color.Yellow("  %s", w.String())
		}
		for _, fl := range r.Failures {
			color.Red("  %s", fl.String())
		}
		if r.Failed == 0 {
			color.Green("  %d check(s) passed", r.Passed)
		} else {
			color.Red("  %d of %d check(s) failed", r.Failed, r.Failed+r.Passed)
		}
	}
}

// PrintCachedNotices reports targets whose results were reused from the cache.
func (f *Formatter) PrintCachedNotices(results []domain.FileResult) {
	for _, r := range results {
		if r.Cached {
			color.White("Using cached results for %s", r.Target)
		}
	}
}

// PrintMetaStats displays the statistics table for a finished run.
func (f *Formatter) PrintMetaStats(meta domain.RunMeta) {
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Datacheck Run Statistics                  ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Suite")
	color.White("%-27s │\n", meta.Suite)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Total Targets")
	color.White("%-27d │\n", meta.TotalTargets)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Targets")
	color.Green("%-27d │\n", meta.PassedTargets)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Targets")
	color.Red("%-27d │\n", meta.FailedTargets)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Checks")
	color.Red("%-27d │\n", meta.FailedChecks)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Warnings")
	color.Yellow("%-27d │\n", meta.Warnings)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", fmt.Sprintf("%.2fs", meta.DurationSeconds))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Workers")
	color.White("%-27d │\n", meta.Workers)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedChecks == 0 {
		color.Green("✓ All checks passed!")
	} else {
		color.Red("✗ %d target(s) failed with %d check failure(s)", meta.FailedTargets, meta.FailedChecks)
	}
}

// PrintSuiteList prints the registered suites, optionally with their checks.
func (f *Formatter) PrintSuiteList(showChecks bool) {
	names := check.Names()
	color.Green("Registered %d suite(s):\n", len(names))
	for i, name := range names {
		suite, _ := check.Lookup(name)
		isLast := i == len(names)-1
		label := suite.Name
		if suite.Description != "" {
			label = fmt.Sprintf("%s: %s", suite.Name, suite.Description)
		}
		if isLast {
			color.Cyan("└── %s", label)
		} else {
			color.Cyan("├── %s", label)
		}
		if !showChecks {
			continue
		}
		for j, chk := range suite.Checks {
			isLastCheck := j == len(suite.Checks)-1
			var prefix string
			switch {
			case isLast && isLastCheck:
				prefix = "    └── "
			case isLast:
				prefix = "    ├── "
			case isLastCheck:
				prefix = "│   └── "
			default:
				prefix = "│   ├── "
			}
			fmt.Printf("%s%s\n", prefix, color.YellowString(chk.Name))
		}
		if !isLast {
			fmt.Println()
		}
	}
}

// PrintFileList prints discovered data files as relative paths.
func (f *Formatter) PrintFileList(files []string) {
	color.Green("Found %d data file(s):\n", len(files))
	sorted := make([]string, len(files))
	copy(sorted, files)
	sort.Strings(sorted)
	for i, file := range sorted {
		relPath, err := filepath.Rel(f.config.ProjectPath, file)
		if err != nil {
			relPath = file
		}
		if i == len(sorted)-1 {
			color.Cyan("└── %s", relPath)
		} else {
			color.Cyan("├── %s", relPath)
		}
	}
}
