package storage

import (
	"os"
	"testing"
	"time"

	"dtp/internal/config"
	"dtp/internal/domain"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "dtp-storage-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	return &config.Config{
		ProjectPath:    tmpDir,
		OutputJSONDir:  "storage",
		OutputJSONFile: "doctest-results.json",
	}
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	st := NewJSONStorage(testConfig(t))

	report := domain.NewReport()
	report.Record(domain.ModuleResult{Name: "config", Attempted: 3, Failed: 1})
	report.Record(domain.ModuleResult{Name: "rhiza", Attempted: 2})
	report.Failures = append(report.Failures, domain.ExampleFailure{
		Module: "config",
		Source: "calc.Add(2, 3)",
		Want:   "6",
		Got:    "5",
		Line:   4,
	})
	report.Warn("could not import broken")

	if err := st.Save(report, 1500*time.Millisecond); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	meta := loaded.Meta
	if meta.TotalModules != 2 || meta.FailedModules != 1 {
		t.Errorf("unexpected module counts: %+v", meta)
	}
	if meta.AttemptedExamples != 5 || meta.FailedExamples != 1 || meta.PassedExamples != 4 {
		t.Errorf("unexpected example counts: %+v", meta)
	}
	if meta.DurationSeconds != 1.5 {
		t.Errorf("unexpected duration: %v", meta.DurationSeconds)
	}
	if len(meta.Warnings) != 1 {
		t.Errorf("warnings not persisted: %v", meta.Warnings)
	}
	if len(loaded.Details) != 1 || loaded.Details[0].Want != "6" {
		t.Errorf("failure details not persisted: %+v", loaded.Details)
	}
	if len(loaded.FailedModules) != 1 || loaded.FailedModules[0].Name != "config" {
		t.Errorf("failed module breakdown not persisted: %+v", loaded.FailedModules)
	}
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	st := NewJSONStorage(testConfig(t))
	if _, err := st.Load(); err == nil {
		t.Error("expected error when no results file exists")
	}
}

func TestJSONStorage_SaveOutputRoundTrip(t *testing.T) {
	st := NewJSONStorage(testConfig(t))

	output := &domain.ReportOutput{
		Details: []domain.ExampleFailure{
			{Module: "config", Resolved: true},
		},
	}
	if err := st.SaveOutput(output); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded.Details) != 1 || !loaded.Details[0].Resolved {
		t.Errorf("resolved flag not persisted: %+v", loaded.Details)
	}
}
