package check

import (
	"database/sql"
	"fmt"

	"datacheck/internal/domain"
)

// failNow is the sentinel panicked by Failf to abort the current check.
type failNow struct{}

// Context carries the target and settings into a check function and collects
// what the function reports.
type Context struct {
	// Suite and Check identify the currently running check; the runner sets
	// Check before each function.
	Suite string
	Check string

	// FilePath is the file under validation; empty for database suites.
	FilePath string

	// DB is the open database handle for database suites, nil otherwise.
	DB *sql.DB

	// MaxLineLength is the soft line length limit for content checks.
	MaxLineLength int

	failures []domain.CheckFailure
	warnings []domain.CheckWarning
}

// Target returns what the context is validating, for report messages.
func (c *Context) Target() string {
	if c.FilePath != "" {
		return c.FilePath
	}
	return "database"
}

// Failf records a hard failure and aborts the current check.
func (c *Context) Failf(format string, args ...interface{}) {
	c.failures = append(c.failures, domain.CheckFailure{
		Suite:   c.Suite,
		Check:   c.Check,
		Target:  c.Target(),
		Message: fmt.Sprintf(format, args...),
	})
	panic(failNow{})
}

// FailOnError aborts the current check if err is non-nil.
func (c *Context) FailOnError(err error) {
	if err != nil {
		c.Failf("%v", err)
	}
}

// Warnf records a soft violation; the check continues.
func (c *Context) Warnf(format string, args ...interface{}) {
	c.warnings = append(c.warnings, domain.CheckWarning{
		Suite:   c.Suite,
		Check:   c.Check,
		Target:  c.Target(),
		Message: fmt.Sprintf(format, args...),
	})
}

// Failures returns the failures collected so far.
func (c *Context) Failures() []domain.CheckFailure {
	return c.failures
}

// Warnings returns the warnings collected so far.
func (c *Context) Warnings() []domain.CheckWarning {
	return c.warnings
}

// RunOne executes a single check, converting Failf aborts and unexpected
// panics into recorded failures. It reports whether the check failed.
func (c *Context) RunOne(chk Check) (failed bool) {
	c.Check = chk.Name
	before := len(c.failures)

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(failNow); !ok {
				// A panic outside Failf still counts as a failure of this check.
				c.failures = append(c.failures, domain.CheckFailure{
					Suite:   c.Suite,
					Check:   chk.Name,
					Target:  c.Target(),
					Message: fmt.Sprintf("unexpected panic: %v", r),
				})
			}
		}
		failed = len(c.failures) > before
	}()

	chk.Fn(c)
	return false
}
