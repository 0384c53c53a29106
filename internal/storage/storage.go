package storage

import (
	"time"

	"dtp/internal/config"
	"dtp/internal/domain"
)

// Storage persists and loads harness run reports (e.g. for the failures viewer).
type Storage interface {
	Save(report *domain.Report, duration time.Duration) error
	Load() (*domain.ReportOutput, error)
	// SaveOutput writes the full output (e.g. after resolving failures in the viewer).
	SaveOutput(output *domain.ReportOutput) error
}

// JSONStorage stores reports in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
