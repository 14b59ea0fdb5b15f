package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datacheck/internal/domain"
)

func writeData(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func passResult(target string) domain.FileResult {
	return domain.FileResult{
		Target: target,
		Suite:  "fasta",
		Passed: 5,
	}
}

func failResult(target string) domain.FileResult {
	return domain.FileResult{
		Target: target,
		Suite:  "fasta",
		Passed: 4,
		Failed: 1,
		Failures: []domain.CheckFailure{
			{Suite: "fasta", Check: "check_records", Target: target, Message: "Duplicate record header: seq1"},
		},
	}
}

func TestEntryMissingFile(t *testing.T) {
	m := NewManager(t.TempDir())
	_, err := m.Entry("fasta", filepath.Join(t.TempDir(), "nope.fa"))
	assert.Error(t, err)
}

func TestStoreAndReload(t *testing.T) {
	dir := t.TempDir()
	file := writeData(t, dir, "genome.fa", ">s\nACGT\n")
	m := NewManager(filepath.Join(dir, "cache"))

	entry, err := m.Entry("fasta", file)
	require.NoError(t, err)
	assert.False(t, entry.CleanPass())

	require.NoError(t, entry.Store(passResult(file)))

	reloaded, err := m.Entry("fasta", file)
	require.NoError(t, err)
	assert.True(t, reloaded.CleanPass())

	summary, ok := reloaded.Summary()
	require.True(t, ok)
	assert.Contains(t, summary, "5 passed")
}

func TestFailedRunRecordsLastFailed(t *testing.T) {
	dir := t.TempDir()
	file := writeData(t, dir, "genome.fa", ">s\nACGT\n")
	m := NewManager(filepath.Join(dir, "cache"))

	entry, err := m.Entry("fasta", file)
	require.NoError(t, err)
	require.NoError(t, entry.Store(failResult(file)))

	assert.False(t, entry.CleanPass())
	assert.True(t, entry.HasFailures())
	assert.Equal(t, []string{"check_records"}, entry.LastFailed())

	// A later clean run clears the failure record.
	require.NoError(t, entry.Store(passResult(file)))
	assert.False(t, entry.HasFailures())
	assert.True(t, entry.CleanPass())
}

func TestKeyedOnContentNotMtime(t *testing.T) {
	dir := t.TempDir()
	file := writeData(t, dir, "genome.fa", ">s\nACGT\n")
	m := NewManager(filepath.Join(dir, "cache"))

	entry, err := m.Entry("fasta", file)
	require.NoError(t, err)
	require.NoError(t, entry.Store(passResult(file)))

	// Touch the file without changing content.
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(file, future, future))

	touched, err := m.Entry("fasta", file)
	require.NoError(t, err)
	assert.True(t, touched.CleanPass())

	// Changing content misses the old entry.
	require.NoError(t, os.WriteFile(file, []byte(">s\nACGTT\n"), 0644))
	changed, err := m.Entry("fasta", file)
	require.NoError(t, err)
	assert.False(t, changed.CleanPass())
}

func TestSuitesDoNotShareEntries(t *testing.T) {
	dir := t.TempDir()
	file := writeData(t, dir, "data.vcf", "##fileformat=VCFv4.2\n")
	m := NewManager(filepath.Join(dir, "cache"))

	fastaEntry, err := m.Entry("fasta", file)
	require.NoError(t, err)
	require.NoError(t, fastaEntry.Store(passResult(file)))

	vcfEntry, err := m.Entry("vcf", file)
	require.NoError(t, err)
	assert.False(t, vcfEntry.CleanPass())
}

func TestRenderSummary(t *testing.T) {
	result := failResult("genome.fa")
	result.Warnings = []domain.CheckWarning{
		{Suite: "fasta", Check: "check_line_length", Target: "genome.fa", Message: "Line 2 is longer than 80 characters."},
	}

	summary := RenderSummary(result)
	assert.Contains(t, summary, "fasta genome.fa: 4 passed, 1 failed, 1 warning(s)")
	assert.Contains(t, summary, "Warning::fasta::check_line_length: Line 2 is longer than 80 characters.")
	assert.Contains(t, summary, "FAILED::check_records::Duplicate record header: seq1")
}
