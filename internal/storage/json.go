package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"datacheck/internal/domain"
)

// Save writes run results to the configured JSON output file.
func (s *JSONStorage) Save(suite string, results []domain.FileResult, duration time.Duration, workers int) error {
	var passed, failed, failedChecks, warningCount int
	var failures []domain.CheckFailure
	var warnings []domain.CheckWarning
	for _, r := range results {
		if r.Success() {
			passed++
		} else {
			failed++
		}
		failedChecks += r.Failed
		warningCount += len(r.Warnings)
		failures = append(failures, r.Failures...)
		warnings = append(warnings, r.Warnings...)
	}

	output := domain.RunOutput{
		Meta: domain.RunMeta{
			Suite:           suite,
			TotalTargets:    len(results),
			PassedTargets:   passed,
			FailedTargets:   failed,
			FailedChecks:    failedChecks,
			Warnings:        warningCount,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Workers:         workers,
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Failures: failures,
		Warnings: warnings,
	}
	return s.SaveOutput(&output)
}

// Load reads the last run results from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
