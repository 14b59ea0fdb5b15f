package execution

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datacheck/internal/cache"
	"datacheck/internal/check"
	"datacheck/internal/config"
)

// execTestSuite fails files containing "BAD" and warns on files containing "LONG".
var execTestSuite = &check.Suite{
	Name:       "exec-test",
	Extensions: []string{".dat"},
	Checks: []check.Check{
		{Name: "check_content", Fn: func(c *check.Context) {
			data, err := os.ReadFile(c.FilePath)
			c.FailOnError(err)
			if strings.Contains(string(data), "BAD") {
				c.Failf("file contains BAD")
			}
		}},
		{Name: "check_length", Fn: func(c *check.Context) {
			data, err := os.ReadFile(c.FilePath)
			c.FailOnError(err)
			if strings.Contains(string(data), "LONG") {
				c.Warnf("file contains LONG")
			}
		}},
	},
}

func init() {
	check.Register(execTestSuite)
}

func writeTarget(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "target.dat")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunnerPassing(t *testing.T) {
	runner := NewRunner(config.New(), nil, nil)
	result := runner.Run(execTestSuite, writeTarget(t, "fine"))

	assert.True(t, result.Success())
	assert.Equal(t, 2, result.Passed)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Warnings)
}

func TestRunnerFailing(t *testing.T) {
	runner := NewRunner(config.New(), nil, nil)
	result := runner.Run(execTestSuite, writeTarget(t, "BAD LONG"))

	assert.False(t, result.Success())
	assert.Equal(t, 1, result.Passed)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "check_content", result.Failures[0].Check)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "check_length", result.Warnings[0].Check)
}

func TestRunnerMissingFile(t *testing.T) {
	runner := NewRunner(config.New(), nil, nil)
	result := runner.Run(execTestSuite, filepath.Join(t.TempDir(), "nope.dat"))

	assert.False(t, result.Success())
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "check_file_exists", result.Failures[0].Check)
}

func TestRunnerSkipsConfiguredChecks(t *testing.T) {
	cfg := config.New()
	cfg.Suites["exec-test"] = config.SuiteSettings{Skip: []string{"check_length"}}

	runner := NewRunner(cfg, nil, nil)
	result := runner.Run(execTestSuite, writeTarget(t, "LONG"))

	assert.Equal(t, 1, result.Passed)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, result.Warnings)
}

func TestRunnerUsesCacheOnCleanPass(t *testing.T) {
	cfg := config.New()
	manager := cache.NewManager(filepath.Join(t.TempDir(), "cache"))
	runner := NewRunner(cfg, nil, manager)
	path := writeTarget(t, "fine")

	first := runner.Run(execTestSuite, path)
	assert.False(t, first.Cached)
	assert.True(t, first.Success())

	second := runner.Run(execTestSuite, path)
	assert.True(t, second.Cached)
	assert.True(t, second.Success())
	assert.Contains(t, second.CachedSummary, "2 passed")
}

func TestRunnerDoesNotCacheFailures(t *testing.T) {
	cfg := config.New()
	manager := cache.NewManager(filepath.Join(t.TempDir(), "cache"))
	runner := NewRunner(cfg, nil, manager)
	path := writeTarget(t, "BAD")

	first := runner.Run(execTestSuite, path)
	assert.False(t, first.Cached)
	assert.False(t, first.Success())

	// Failed runs are re-executed, not served from the cache.
	second := runner.Run(execTestSuite, path)
	assert.False(t, second.Cached)
	assert.False(t, second.Success())
}
