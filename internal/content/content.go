// Package content provides line and character level checks shared by the
// text-format suites.
package content

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// FastaType classifies the sequence alphabet of a FASTA file.
type FastaType string

const (
	TypeNucleotide FastaType = "nucleotide"
	TypeProtein    FastaType = "protein"
	TypeUnknown    FastaType = "unknown"
)

const (
	// NucleotideChars is the allowed alphabet for nucleotide sequences (IUPAC codes plus gap).
	NucleotideChars = "ACGTUMRSWYKVHDBN-"
	// ProteinChars is the allowed alphabet for protein sequences (IUPAC codes, stop and gap).
	ProteinChars = "ABCDEFGHIKLMNPQRSTVWXYZ*-"
)

// LineLengthCheck returns one warning message per line longer than maxLength.
// Trailing whitespace is not counted.
func LineLengthCheck(path string, maxLength int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var warnings []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if len(strings.TrimRight(scanner.Text(), " \t\r")) > maxLength {
			warnings = append(warnings, fmt.Sprintf("Line %d is longer than %d characters.", lineNo, maxLength))
		}
	}
	return warnings, scanner.Err()
}

// AllowedCharacterCheck scans sequence lines (header lines starting with '>'
// are skipped) and returns the number of the first line containing a
// character outside allowedChars, or 0 if every line is clean.
func AllowedCharacterCheck(path string, allowedChars string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	allowed := make(map[rune]bool, len(allowedChars))
	for _, r := range strings.ToUpper(allowedChars) {
		allowed[r] = true
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(line, ">") {
			continue
		}
		for _, r := range strings.ToUpper(strings.TrimSpace(line)) {
			if !allowed[r] {
				return lineNo, nil
			}
		}
	}
	return 0, scanner.Err()
}

// DetermineFastaType decides whether a FASTA file holds nucleotide or protein
// sequences by looking for a character unique to one of the two alphabets.
func DetermineFastaType(path string) (FastaType, error) {
	f, err := os.Open(path)
	if err != nil {
		return TypeUnknown, err
	}
	defer f.Close()

	nucleotide := charSet(NucleotideChars)
	protein := charSet(ProteinChars)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ">") {
			continue
		}
		for _, r := range strings.ToUpper(strings.TrimSpace(line)) {
			switch {
			case protein[r] && !nucleotide[r]:
				return TypeProtein, nil
			case nucleotide[r] && !protein[r]:
				return TypeNucleotide, nil
			}
		}
	}
	return TypeUnknown, scanner.Err()
}

// EndsWithNewline reports whether the file's last byte is a newline.
// An empty file counts as not ending with a newline.
func EndsWithNewline(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if _, err := f.Seek(-1, io.SeekEnd); err != nil {
		// Empty file: nothing to seek past.
		return false, nil
	}
	buf := make([]byte, 1)
	if _, err := f.Read(buf); err != nil {
		return false, err
	}
	return buf[0] == '\n', nil
}

func charSet(chars string) map[rune]bool {
	set := make(map[rune]bool, len(chars))
	for _, r := range chars {
		set[r] = true
	}
	return set
}
