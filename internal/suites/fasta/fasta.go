// Package fasta validates FASTA sequence files. See: https://zhanggroup.org/FASTA/
//
// Checks performed:
//  1. File is a text file (failure).
//  2. Line length under the configured limit (warning).
//  3. Only allowed characters for the detected alphabet (failure).
//  4. File ends with a newline (warning).
//  5. Records are well formed: unique headers, non-empty sequences (failure).
package fasta

import (
	"os"

	"datacheck/internal/check"
	"datacheck/internal/content"
	"datacheck/internal/fileutil"
)

func init() {
	check.Register(&check.Suite{
		Name:        "fasta",
		Description: "FASTA sequence file formatting",
		Extensions:  []string{".fa", ".fasta", ".fsa", ".faa", ".fna"},
		Checks: []check.Check{
			{Name: "check_is_text_file", Fn: checkIsTextFile},
			{Name: "check_line_length", Fn: checkLineLength},
			{Name: "check_allowed_characters", Fn: checkAllowedCharacters},
			{Name: "check_ends_with_newline", Fn: checkEndsWithNewline},
			{Name: "check_records", Fn: checkRecords},
		},
	})
}

func checkIsTextFile(c *check.Context) {
	if !fileutil.IsTextFile(c.FilePath) {
		c.Failf("The file is not identified as a text file.")
	}
}

func checkLineLength(c *check.Context) {
	warnings, err := content.LineLengthCheck(c.FilePath, c.MaxLineLength)
	c.FailOnError(err)
	for _, w := range warnings {
		c.Warnf("%s", w)
	}
}

func checkAllowedCharacters(c *check.Context) {
	fastaType, err := content.DetermineFastaType(c.FilePath)
	c.FailOnError(err)

	var allowed string
	switch fastaType {
	case content.TypeNucleotide:
		allowed = content.NucleotideChars
	case content.TypeProtein:
		allowed = content.ProteinChars
	default:
		// A file with no distinguishing characters fits both alphabets;
		// validate against the stricter nucleotide set.
		allowed = content.NucleotideChars
	}

	line, err := content.AllowedCharacterCheck(c.FilePath, allowed)
	c.FailOnError(err)
	if line != 0 {
		c.Failf("Line %d does not match either nucleotide or protein configurations.", line)
	}
}

func checkEndsWithNewline(c *check.Context) {
	ok, err := content.EndsWithNewline(c.FilePath)
	c.FailOnError(err)
	if !ok {
		c.Warnf("The file %s does not end in a newline character.", c.FilePath)
	}
}

func checkRecords(c *check.Context) {
	f, err := os.Open(c.FilePath)
	c.FailOnError(err)
	defer f.Close()

	records, err := content.ParseFasta(f)
	c.FailOnError(err)

	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		if seen[rec.Header] {
			c.Failf("Duplicate record header: %s", rec.Header)
		}
		seen[rec.Header] = true
		if rec.Sequence == "" {
			c.Failf("Record %s has an empty sequence.", rec.Header)
		}
	}
}
