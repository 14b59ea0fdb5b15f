package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters data files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters files by name pattern using wildcard matching.
// Supports patterns like "*pass.fasta" or "*chr1*"; a pattern without
// wildcards matches as a substring.
func (f *Filter) FilterByName(files []string, pattern string) []string {
	if pattern == "" {
		return files
	}

	var filtered []string
	for _, file := range files {
		name := filepath.Base(file)

		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			filtered = append(filtered, file)
			continue
		}

		if strings.ContainsAny(pattern, "*?") {
			// Fall back to substring matching on the non-wildcard parts,
			// so "*chr1*" style patterns behave as users expect.
			if wildcardParts(pattern, name) {
				filtered = append(filtered, file)
			}
			continue
		}

		if strings.Contains(name, pattern) {
			filtered = append(filtered, file)
		}
	}
	return filtered
}

// wildcardParts reports whether every non-empty part of the pattern (split on
// '*') appears in name.
func wildcardParts(pattern, name string) bool {
	parts := strings.Split(pattern, "*")
	hasNonEmpty := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		hasNonEmpty = true
		if !strings.Contains(name, part) {
			return false
		}
	}
	return hasNonEmpty
}
