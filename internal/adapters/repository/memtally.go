// Package repository defines the usage tally interface and errors.
package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rubriq/rubriq/internal/domain/model"
	"github.com/rubriq/rubriq/pkg/metrics"
)

// defaultMetricsUpdateInterval controls how often gauge metrics are refreshed.
const defaultMetricsUpdateInterval = 5 * time.Second

// MemTally is an in-memory Tally implementation guarded by a RWMutex.
//
// Counters are plain integers; averages are derived on read. Level counters
// can be pre-seeded via WithLevels so summaries list every level even before
// the first outcome arrives.
type MemTally struct {
	mu        sync.RWMutex
	recorded  int64
	scoreSum  int64
	levels    map[string]int64
	dimSums   map[string]int64
	dimCounts map[string]int64

	metricsUpdateInterval time.Duration

	wg       sync.WaitGroup
	stopChan chan struct{}
	closed   atomic.Bool
}

// NewMemTally constructs an in-memory tally with configuration options.
func NewMemTally(ctx context.Context, opts ...Option) *MemTally {
	t := &MemTally{
		metricsUpdateInterval: defaultMetricsUpdateInterval,
		levels:                make(map[string]int64),
		dimSums:               make(map[string]int64),
		dimCounts:             make(map[string]int64),
	}

	// Apply all options
	for _, opt := range opts {
		opt(t)
	}

	// Initialize stop channel and start the background metrics updater
	t.stopChan = make(chan struct{})
	t.startMetricsUpdater(ctx)

	return t
}

// Record implements Tally.Record.
func (t *MemTally) Record(_ context.Context, outcome model.Outcome) error {
	if t.closed.Load() {
		metrics.RecordErrorByType("tally_closed", "warning")
		return ErrClosed
	}

	t.mu.Lock()
	t.recorded++
	t.scoreSum += int64(outcome.OverallScore)
	t.levels[outcome.Level]++
	for id, score := range outcome.Dimensions {
		t.dimSums[id] += int64(score)
		t.dimCounts[id]++
	}
	recorded := t.recorded
	avg := float64(t.scoreSum) / float64(recorded)
	t.mu.Unlock()

	// Update gauges outside the lock
	metrics.UpdateTallyRecorded(recorded)
	metrics.UpdateTallyAverageScore(avg)

	return nil
}

// Summary implements Tally.Summary.
func (t *MemTally) Summary(_ context.Context) Summary {
	t.mu.RLock()
	defer t.mu.RUnlock()

	levels := make(map[string]int64, len(t.levels))
	for level, n := range t.levels {
		levels[level] = n
	}

	dims := make(map[string]float64, len(t.dimSums))
	for id, sum := range t.dimSums {
		if n := t.dimCounts[id]; n > 0 {
			dims[id] = float64(sum) / float64(n)
		}
	}

	s := Summary{
		Recorded:          t.recorded,
		LevelCounts:       levels,
		DimensionAverages: dims,
	}
	if t.recorded > 0 {
		s.AverageScore = float64(t.scoreSum) / float64(t.recorded)
	}
	return s
}

// Count implements Tally.Count.
func (t *MemTally) Count(_ context.Context) int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.recorded
}

// Close stops the background metrics updater and rejects further records.
func (t *MemTally) Close() error {
	if t.closed.Swap(true) {
		return nil
	}
	close(t.stopChan)
	t.wg.Wait()
	return nil
}

// startMetricsUpdater starts a background goroutine that refreshes tally gauges.
func (t *MemTally) startMetricsUpdater(ctx context.Context) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ticker := time.NewTicker(t.metricsUpdateInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.stopChan:
				return
			case <-ticker.C:
				t.updateMetrics()
			}
		}
	}()
}

// updateMetrics refreshes all tally-related gauges.
func (t *MemTally) updateMetrics() {
	t.mu.RLock()
	recorded := t.recorded
	var avg float64
	if recorded > 0 {
		avg = float64(t.scoreSum) / float64(recorded)
	}
	t.mu.RUnlock()

	metrics.UpdateTallyRecorded(recorded)
	metrics.UpdateTallyAverageScore(avg)
}
