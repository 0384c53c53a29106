package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dtp/internal/domain"
)

// Save writes a run report to the configured JSON output file.
func (s *JSONStorage) Save(report *domain.Report, duration time.Duration) error {
	output := domain.ReportOutput{
		Meta: domain.ReportMeta{
			TotalModules:      len(report.Modules),
			FailedModules:     len(report.FailedModules()),
			AttemptedExamples: report.Attempted,
			PassedExamples:    report.Attempted - report.Failed,
			FailedExamples:    report.Failed,
			Warnings:          report.Warnings,
			Duration:          duration.String(),
			DurationSeconds:   duration.Seconds(),
			Timestamp:         time.Now().Format(time.RFC3339),
		},
		FailedModules: report.FailedModules(),
		Details:       report.Failures,
	}
	return s.SaveOutput(&output)
}

// Load reads the last run report from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.ReportOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.ReportOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file (e.g. after marking failures resolved).
func (s *JSONStorage) SaveOutput(output *domain.ReportOutput) error {
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
