package ui

import "dtp/internal/domain"

// Viewer displays run results in an interactive TUI
type Viewer interface {
	View(results *domain.ReportOutput) error
}
