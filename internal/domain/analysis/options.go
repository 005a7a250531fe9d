package analysis

import (
	"github.com/rubriq/rubriq/internal/domain/dimension"
	"github.com/rubriq/rubriq/pkg/logger"
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithAnalyzers replaces the default analyzer set. Empty input keeps the
// default.
func WithAnalyzers(analyzers ...dimension.Analyzer) Option {
	return func(e *Engine) {
		if len(analyzers) > 0 {
			e.analyzers = analyzers
		}
	}
}

// WithLogger sets the logger used to report analyzer failures.
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}
