package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// settingsFile mirrors the structure of datacheck.yml.
type settingsFile struct {
	MaxLineLength int                      `yaml:"max_line_length"`
	Ignore        []string                 `yaml:"ignore"`
	Suites        map[string]SuiteSettings `yaml:"suites"`
}

// LoadSettings reads the optional datacheck.yml from the project path and
// applies it to the config. A missing file is not an error.
func (c *Config) LoadSettings() error {
	path := filepath.Join(c.ProjectPath, DefaultSettingsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read settings file: %w", err)
	}

	var sf settingsFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse %s: %w", DefaultSettingsFile, err)
	}

	if sf.MaxLineLength > 0 {
		c.MaxLineLength = sf.MaxLineLength
	}
	if len(sf.Ignore) > 0 {
		c.PathsToIgnore = append(c.PathsToIgnore, sf.Ignore...)
	}
	for name, s := range sf.Suites {
		c.Suites[name] = s
	}
	return nil
}
