package execution

import (
	"database/sql"
	"time"

	"datacheck/internal/cache"
	"datacheck/internal/check"
	"datacheck/internal/config"
	"datacheck/internal/domain"
	"datacheck/internal/fileutil"
)

// Runner executes one check suite against one target
type Runner struct {
	config *config.Config
	conn   *sql.DB
	cache  *cache.Manager
}

// NewRunner creates a new Runner. conn may be nil for file suites, and
// cacheManager may be nil to disable result caching.
func NewRunner(cfg *config.Config, conn *sql.DB, cacheManager *cache.Manager) *Runner {
	return &Runner{config: cfg, conn: conn, cache: cacheManager}
}

// Run executes every check of the suite against filePath (empty for DB
// suites) and collects the outcome. Checks disabled in the settings file are
// skipped.
func (r *Runner) Run(suite *check.Suite, filePath string) domain.FileResult {
	start := time.Now()
	result := domain.FileResult{
		Target: filePath,
		Suite:  suite.Name,
	}
	if filePath == "" {
		result.Target = "database"
	}

	if filePath != "" && !fileutil.FileExists(filePath) {
		result.Failed = len(suite.Checks)
		result.Failures = append(result.Failures, domain.CheckFailure{
			Suite:   suite.Name,
			Check:   "check_file_exists",
			Target:  filePath,
			Message: "The file does not exist.",
		})
		result.Duration = time.Since(start)
		return result
	}

	var entry *cache.Entry
	if r.cache != nil && filePath != "" {
		if e, err := r.cache.Entry(suite.Name, filePath); err == nil {
			entry = e
			if entry.CleanPass() {
				summary, _ := entry.Summary()
				result.Passed = len(suite.Checks)
				result.Cached = true
				result.CachedSummary = summary
				result.Duration = time.Since(start)
				return result
			}
		}
	}

	ctx := &check.Context{
		Suite:         suite.Name,
		FilePath:      filePath,
		DB:            r.conn,
		MaxLineLength: r.config.SuiteMaxLineLength(suite.Name),
	}

	skips := r.config.SuiteSkips(suite.Name)
	for _, chk := range suite.Checks {
		if skips[chk.Name] {
			result.Skipped++
			continue
		}
		if ctx.RunOne(chk) {
			result.Failed++
		} else {
			result.Passed++
		}
	}

	result.Failures = ctx.Failures()
	result.Warnings = ctx.Warnings()
	result.Duration = time.Since(start)

	if entry != nil {
		// Best effort: a cache write failure never fails the run.
		_ = entry.Store(result)
	}
	return result
}
