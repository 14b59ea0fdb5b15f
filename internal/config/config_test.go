package config

import (
	"testing"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.Processors != DefaultProcessors {
		t.Errorf("expected Processors %d, got %d", DefaultProcessors, cfg.Processors)
	}

	if cfg.MaxLineLength != DefaultMaxLineLength {
		t.Errorf("expected MaxLineLength %d, got %d", DefaultMaxLineLength, cfg.MaxLineLength)
	}

	if len(cfg.PathsToIgnore) != len(DefaultPathsToIgnore) {
		t.Errorf("expected %d paths to ignore, got %d", len(DefaultPathsToIgnore), len(cfg.PathsToIgnore))
	}
}

func TestConfig_SuiteMaxLineLength(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		suite    string
		expected int
	}{
		{
			name:     "global default",
			config:   &Config{MaxLineLength: 80, Suites: map[string]SuiteSettings{}},
			suite:    "fasta",
			expected: 80,
		},
		{
			name: "suite override",
			config: &Config{
				MaxLineLength: 80,
				Suites: map[string]SuiteSettings{
					"fasta": {MaxLineLength: 120},
				},
			},
			suite:    "fasta",
			expected: 120,
		},
		{
			name: "override for another suite does not apply",
			config: &Config{
				MaxLineLength: 80,
				Suites: map[string]SuiteSettings{
					"vcf": {MaxLineLength: 120},
				},
			},
			suite:    "fasta",
			expected: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.SuiteMaxLineLength(tt.suite)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestConfig_SuiteSkips(t *testing.T) {
	cfg := New()
	cfg.Suites["fasta"] = SuiteSettings{Skip: []string{"check_line_length"}}

	skips := cfg.SuiteSkips("fasta")
	if !skips["check_line_length"] {
		t.Error("expected check_line_length to be skipped")
	}
	if skips["check_records"] {
		t.Error("did not expect check_records to be skipped")
	}

	if len(cfg.SuiteSkips("vcf")) != 0 {
		t.Error("expected no skips for vcf")
	}
}

func TestConfig_SuiteExtensions(t *testing.T) {
	cfg := New()
	if exts := cfg.SuiteExtensions("fasta"); exts != nil {
		t.Errorf("expected nil extensions without settings, got %v", exts)
	}

	cfg.Suites["fasta"] = SuiteSettings{Extensions: []string{".seq"}}
	exts := cfg.SuiteExtensions("fasta")
	if len(exts) != 1 || exts[0] != ".seq" {
		t.Errorf("expected [.seq], got %v", exts)
	}
}
