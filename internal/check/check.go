// Package check defines the check function model: named check functions
// grouped into suites, a registry the suites self-register into, and the
// context checks use to report failures and warnings.
package check

import (
	"fmt"
	"sort"
)

// Func is a single check function. It reports problems through the Context;
// a hard failure aborts the function, warnings let it continue.
type Func func(*Context)

// Check is a named check function within a suite.
type Check struct {
	Name string
	Fn   Func
}

// Suite is a named, ordered set of checks for one data format or database schema.
type Suite struct {
	Name        string
	Description string
	// Extensions are the file extensions the suite claims when scanning; empty for DB suites.
	Extensions []string
	// NeedsDB marks suites that run against a database instead of a file.
	NeedsDB bool
	Checks  []Check
}

var registry = make(map[string]*Suite)

// Register adds a suite to the global registry. Suites register from their
// package init; a duplicate name is a programming error.
func Register(s *Suite) {
	if _, exists := registry[s.Name]; exists {
		panic(fmt.Sprintf("check: suite %q registered twice", s.Name))
	}
	registry[s.Name] = s
}

// Lookup returns the suite registered under name.
func Lookup(name string) (*Suite, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names returns the registered suite names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ClaimsExtension reports whether the suite handles files with the given
// extension (leading dot included, case already lowered by the caller).
func (s *Suite) ClaimsExtension(ext string) bool {
	for _, e := range s.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}
