// Package vcf validates VCF variant files. See: https://samtools.github.io/hts-specs/
//
// Checks performed:
//  1. File is a text file (failure).
//  2. File ends with a newline (warning).
//  3. Meta-information lines: file starts with ##fileformat (failure).
//  4. Header line: #CHROM line present with the 8 fixed fields (failure).
//  5. Data lines: tab-delimited, at least 8 fields, no empty fields
//     (missing data must be '.'), no trailing tab (failure).
package vcf

import (
	"bufio"
	"os"
	"strings"

	"datacheck/internal/check"
	"datacheck/internal/content"
	"datacheck/internal/fileutil"
)

// fixedFields are the 8 mandatory columns of the VCF header line.
var fixedFields = []string{"#CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO"}

func init() {
	check.Register(&check.Suite{
		Name:        "vcf",
		Description: "VCF variant file formatting",
		Extensions:  []string{".vcf"},
		Checks: []check.Check{
			{Name: "check_is_text_file", Fn: checkIsTextFile},
			{Name: "check_ends_with_newline", Fn: checkEndsWithNewline},
			{Name: "check_meta_lines", Fn: checkMetaLines},
			{Name: "check_header_line", Fn: checkHeaderLine},
			{Name: "check_data_lines", Fn: checkDataLines},
		},
	})
}

func checkIsTextFile(c *check.Context) {
	if !fileutil.IsTextFile(c.FilePath) {
		c.Failf("The file is not identified as a text file.")
	}
}

func checkEndsWithNewline(c *check.Context) {
	ok, err := content.EndsWithNewline(c.FilePath)
	c.FailOnError(err)
	if !ok {
		c.Warnf("The file %s does not end in a newline character.", c.FilePath)
	}
}

func checkMetaLines(c *check.Context) {
	f, err := os.Open(c.FilePath)
	c.FailOnError(err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		c.FailOnError(scanner.Err())
		c.Failf("The file is empty; a VCF file must start with a ##fileformat line.")
	}
	first := scanner.Text()
	if !strings.HasPrefix(first, "##fileformat=") {
		c.Failf("The first line must be a ##fileformat meta-information line, got: %s", truncate(first, 60))
	}
}

func checkHeaderLine(c *check.Context) {
	header, lineNo, err := findHeaderLine(c.FilePath)
	c.FailOnError(err)
	if header == "" {
		c.Failf("No #CHROM header line found.")
	}

	fields := strings.Split(header, "\t")
	if len(fields) < len(fixedFields) {
		c.Failf("Header line %d has %d fields, expected at least the %d fixed fields.", lineNo, len(fields), len(fixedFields))
	}
	for i, want := range fixedFields {
		if fields[i] != want {
			c.Failf("Header line %d field %d is %q, expected %q.", lineNo, i+1, fields[i], want)
		}
	}
}

func checkDataLines(c *check.Context) {
	f, err := os.Open(c.FilePath)
	c.FailOnError(err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasSuffix(line, "\t") {
			c.Failf("Data line %d ends with a tab character.", lineNo)
		}
		fields := strings.Split(line, "\t")
		if len(fields) < len(fixedFields) {
			c.Failf("Data line %d has %d fields, expected at least %d.", lineNo, len(fields), len(fixedFields))
		}
		for i, field := range fields {
			if field == "" {
				c.Failf("Data line %d field %d is empty; missing values must be '.'.", lineNo, i+1)
			}
		}
	}
	c.FailOnError(scanner.Err())
}

// findHeaderLine returns the first non-meta header line ('#' but not '##')
// and its line number, or "" if the file has none.
func findHeaderLine(path string) (string, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(line, "##") {
			continue
		}
		if strings.HasPrefix(line, "#") {
			return line, lineNo, nil
		}
		// Data lines start; no header was seen.
		break
	}
	return "", 0, scanner.Err()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
