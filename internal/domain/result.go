package domain

import "time"

// FileResult represents the outcome of running a check suite against one target
// (a data file, or a database for DB suites).
type FileResult struct {
	Target   string        // File path or database name the suite ran against
	Suite    string        // Name of the suite that was run
	Passed   int           // Number of checks that passed
	Failed   int           // Number of checks that failed
	Skipped  int           // Number of checks skipped by configuration
	Warnings []CheckWarning
	Failures []CheckFailure
	Duration time.Duration // Time taken to run the suite
	Err      error         // Error if the suite could not be run at all

	// Cached marks a result reused from the cache instead of a fresh run;
	// CachedSummary holds the stored summary text.
	Cached        bool
	CachedSummary string
}

// Success reports whether the suite ran and no check failed.
func (r FileResult) Success() bool {
	return r.Err == nil && r.Failed == 0
}

// RunMeta contains metadata about a datacheck run.
type RunMeta struct {
	Suite           string  `json:"suite"`
	TotalTargets    int     `json:"total_targets"`
	PassedTargets   int     `json:"passed_targets"`
	FailedTargets   int     `json:"failed_targets"`
	FailedChecks    int     `json:"failed_checks"`
	Warnings        int     `json:"warnings"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted output of a datacheck run.
type RunOutput struct {
	Meta     RunMeta        `json:"meta"`
	Failures []CheckFailure `json:"failures"`
	Warnings []CheckWarning `json:"warnings,omitempty"`
}
