// Package repository defines the usage tally interface and errors.
package repository

import "time"

// Option applies a configuration option to the MemTally.
type Option func(*MemTally)

// WithMetricsUpdateInterval sets the interval for background metrics updates.
func WithMetricsUpdateInterval(interval time.Duration) Option {
	return func(t *MemTally) {
		if interval > 0 {
			t.metricsUpdateInterval = interval
		}
	}
}

// WithLevels pre-seeds the level counters so summaries list every level
// before the first outcome arrives.
func WithLevels(levels []string) Option {
	return func(t *MemTally) {
		for _, level := range levels {
			if level != "" {
				t.levels[level] = 0
			}
		}
	}
}
