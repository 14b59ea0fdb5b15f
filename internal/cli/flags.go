package cli

import "datacheck/internal/config"

// Flags holds command-line flags
type Flags struct {
	Suite        string
	Files        []string
	ScanPath     string
	NameFilter   string
	Database     string
	Processors   int
	FailFast     bool
	NoWarnings   bool
	NativeOutput bool
	NoCache      bool
	LoadResults  bool
	ShowChecks   bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Suite:        f.Suite,
		Files:        f.Files,
		ScanPath:     f.ScanPath,
		NameFilter:   f.NameFilter,
		Database:     f.Database,
		Processors:   f.Processors,
		FailFast:     f.FailFast,
		NoWarnings:   f.NoWarnings,
		NativeOutput: f.NativeOutput,
		NoCache:      f.NoCache,
		LoadResults:  f.LoadResults,
		ShowChecks:   f.ShowChecks,
	}
}
