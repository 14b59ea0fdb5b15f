// Package cache stores per-file check results keyed on file content, so
// re-running a check suite against an unchanged file that already passed can
// reuse the stored outcome.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"

	"datacheck/internal/domain"
)

const (
	lastFailedFile = "lastfailed.json"
	resultsSuffix  = "_results.txt"
)

// Manager locates and maintains cache entries under a root directory.
type Manager struct {
	root string
}

// NewManager creates a Manager rooted at dir.
func NewManager(dir string) *Manager {
	return &Manager{root: dir}
}

// Entry is the cache slot for one (suite, file content) pair.
type Entry struct {
	dir  string
	stem string
}

// Entry returns the cache entry for the file, keyed on the xxhash of its
// content so a touched but unchanged file still hits.
func (m *Manager) Entry(suite, filePath string) (*Entry, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("hash file for cache: %w", err)
	}
	key := fmt.Sprintf("%016x", xxhash.Sum64(data))
	stem := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	return &Entry{
		dir:  filepath.Join(m.root, suite, key),
		stem: stem,
	}, nil
}

func (e *Entry) resultsPath() string {
	return filepath.Join(e.dir, e.stem+resultsSuffix)
}

// Summary returns the stored result summary, if the entry has one.
func (e *Entry) Summary() (string, bool) {
	data, err := os.ReadFile(e.resultsPath())
	if err != nil {
		return "", false
	}
	return string(data), true
}

// HasFailures reports whether the stored run had failing checks.
func (e *Entry) HasFailures() bool {
	_, err := os.Stat(filepath.Join(e.dir, lastFailedFile))
	return err == nil
}

// LastFailed returns the names of the checks that failed in the stored run.
func (e *Entry) LastFailed() []string {
	data, err := os.ReadFile(filepath.Join(e.dir, lastFailedFile))
	if err != nil {
		return nil
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil
	}
	return names
}

// CleanPass reports whether the entry holds a stored run with no failures.
func (e *Entry) CleanPass() bool {
	_, ok := e.Summary()
	return ok && !e.HasFailures()
}

// Store persists the result summary. A failing run also records the failed
// check names; a clean run deletes any earlier failure record.
func (e *Entry) Store(result domain.FileResult) error {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	if err := os.WriteFile(e.resultsPath(), []byte(RenderSummary(result)), 0644); err != nil {
		return fmt.Errorf("write cached results: %w", err)
	}

	failedPath := filepath.Join(e.dir, lastFailedFile)
	if result.Failed == 0 {
		if err := os.Remove(failedPath); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}

	var names []string
	for _, f := range result.Failures {
		names = append(names, f.Check)
	}
	data, err := json.Marshal(names)
	if err != nil {
		return err
	}
	return os.WriteFile(failedPath, data, 0644)
}

// RenderSummary renders a result to the plain text form stored in the cache.
func RenderSummary(result domain.FileResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %d passed, %d failed, %d warning(s)\n",
		result.Suite, result.Target, result.Passed, result.Failed, len(result.Warnings))
	for _, w := range result.Warnings {
		fmt.Fprintln(&b, w.String())
	}
	for _, f := range result.Failures {
		fmt.Fprintln(&b, f.String())
	}
	return b.String()
}
