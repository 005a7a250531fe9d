// Package repository defines the usage tally interface and errors.
package repository

import (
	"context"

	"github.com/rubriq/rubriq/internal/domain/model"
)

// Summary is a point-in-time view of the aggregate usage counters.
type Summary struct {
	Recorded          int64
	AverageScore      float64
	LevelCounts       map[string]int64
	DimensionAverages map[string]float64
}

// Tally accumulates analysis outcomes into aggregate usage statistics.
type Tally interface {
	// Record folds one analysis outcome into the aggregates.
	// Returns ErrClosed once the tally has been closed.
	Record(ctx context.Context, outcome model.Outcome) error

	// Summary returns a copy of the current aggregates.
	Summary(ctx context.Context) Summary

	// Count returns the number of outcomes recorded so far.
	Count(ctx context.Context) int64
}
