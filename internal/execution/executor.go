package execution

import (
	"time"

	"dtp/internal/domain"
	"dtp/internal/parser"
)

// Executor executes discovered modules and aggregates a run report
type Executor interface {
	Execute(modules []domain.Module) (*domain.Report, time.Duration, error)
}

// Loadable is one runnable documentation unit. The harness depends on
// this capability interface rather than on a concrete import mechanism:
// a unit knows its name, can surface its documentation text, and can
// produce an evaluation session with itself loaded.
type Loadable interface {
	Name() string
	DocTexts() ([]parser.DocText, error)
	NewSession() (*Session, error)
}
