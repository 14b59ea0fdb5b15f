package config

import (
	"os"
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Cache settings
	CacheDir string

	// Execution settings
	Processors int

	// Content check settings
	MaxLineLength int

	// Paths to ignore when scanning for data files
	PathsToIgnore []string

	// Per-suite settings loaded from datacheck.yml
	Suites map[string]SuiteSettings

	// Command flags
	Flags Flags
}

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

// SuiteSettings holds optional per-suite overrides from the YAML config file.
type SuiteSettings struct {
	MaxLineLength int      `yaml:"max_line_length"`
	Extensions    []string `yaml:"extensions"`
	Skip          []string `yaml:"skip"`
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		CacheDir:       defaultCacheDir(),
		Processors:     DefaultProcessors,
		MaxLineLength:  DefaultMaxLineLength,
		Suites:         make(map[string]SuiteSettings),
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// defaultCacheDir returns the cache root, honouring the DATACHECK_CACHE_DIR override.
func defaultCacheDir() string {
	if dir := os.Getenv("DATACHECK_CACHE_DIR"); dir != "" {
		return dir
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".", DefaultCacheDirName)
	}
	return filepath.Join(base, DefaultCacheDirName)
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run and failures always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// SuiteMaxLineLength returns the line length limit for a suite, falling back to the global default.
func (c *Config) SuiteMaxLineLength(suite string) int {
	if s, ok := c.Suites[suite]; ok && s.MaxLineLength > 0 {
		return s.MaxLineLength
	}
	return c.MaxLineLength
}

// SuiteExtensions returns the extension overrides for a suite, or nil if none are configured.
func (c *Config) SuiteExtensions(suite string) []string {
	if s, ok := c.Suites[suite]; ok && len(s.Extensions) > 0 {
		return s.Extensions
	}
	return nil
}

// SuiteSkips returns the set of check names disabled for a suite.
func (c *Config) SuiteSkips(suite string) map[string]bool {
	skips := make(map[string]bool)
	if s, ok := c.Suites[suite]; ok {
		for _, name := range s.Skip {
			skips[name] = true
		}
	}
	return skips
}
