// Package recorder defines recorder contracts for asynchronous usage recording.
package recorder

import (
	"github.com/rubriq/rubriq/pkg/logger"
)

// Option applies a configuration option to the FeedRecorder.
type Option func(*FeedRecorder)

// WithName sets the recorder name for identification and logging.
func WithName(name string) Option {
	return func(r *FeedRecorder) {
		if name != "" {
			r.name = name
		}
	}
}

// WithLogger sets a custom logger for the recorder.
func WithLogger(logger logger.Logger) Option {
	return func(r *FeedRecorder) {
		if logger != nil {
			r.logger = logger
		}
	}
}
