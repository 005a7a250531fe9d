// Package recorder defines recorder contracts for asynchronous usage recording.
package recorder

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rubriq/rubriq/internal/domain/model"
	"github.com/rubriq/rubriq/pkg/logger"
	"github.com/rubriq/rubriq/pkg/metrics"
)

// Default recorder configuration constants.
const (
	metricsUpdateInterval   = 5 * time.Second
	recorderShutdownTimeout = 5 * time.Second
	poolShutdownTimeout     = 30 * time.Second
)

// Outcome abstracts what recorders read off the feed.
// Using the model.Outcome type for consistency.
type Outcome = model.Outcome

// Tally accumulates recorded outcomes.
type Tally interface {
	Record(ctx context.Context, outcome model.Outcome) error
}

// Feed defines how recorders receive outcomes.
type Feed interface {
	Consume(ctx context.Context) <-chan Outcome
}

// Recorder drains analysis outcomes into the usage tally.
type Recorder interface {
	// Run starts the recorder loop until ctx is canceled.
	Run(ctx context.Context)

	// Shutdown gracefully stops the recorder.
	// It will finish the outcome in flight before stopping.
	Shutdown(ctx context.Context) error
}

// FeedRecorder implements Recorder on top of a Feed.
type FeedRecorder struct {
	feed  Feed
	tally Tally
	name  string

	// Shutdown control
	shutdown chan struct{}
	done     chan struct{}

	// Logging
	logger logger.Logger
}

// NewFeedRecorder creates a new recorder with configuration options.
func NewFeedRecorder(feed Feed, tally Tally, opts ...Option) *FeedRecorder {
	r := &FeedRecorder{
		feed:     feed,
		tally:    tally,
		name:     "recorder", // default name
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("recorder"), // will be updated by options
	}

	// Apply all options
	for _, opt := range opts {
		opt(r)
	}

	// Set up logger with recorder name if not already set
	if r.name != "recorder" {
		r.logger = r.logger.Named(r.name)
	}

	return r
}

// Run starts the recorder loop.
func (r *FeedRecorder) Run(ctx context.Context) {
	defer func() {
		close(r.done)
	}()

	outcomeChan := r.feed.Consume(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.shutdown:
			return
		case outcome, ok := <-outcomeChan:
			if !ok {
				// Channel closed, recorder should stop
				return
			}

			// Record the outcome
			if err := r.record(ctx, outcome); err != nil {
				r.logger.Error(ctx, "error recording outcome", logger.Error(err))
			}
		}
	}
}

// Shutdown gracefully stops the recorder.
func (r *FeedRecorder) Shutdown(ctx context.Context) error {
	// Signal shutdown
	close(r.shutdown)

	// Wait for recorder to finish or context to timeout
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		r.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// record handles a single outcome.
func (r *FeedRecorder) record(ctx context.Context, outcome Outcome) error {
	// Track recording latency
	start := time.Now()
	defer func() {
		latency := time.Since(start).Milliseconds()
		metrics.RecordRecorderLatency(float64(latency))
	}()

	if err := r.tally.Record(ctx, outcome); err != nil {
		metrics.RecordErrorByType("record_error", "high")
		r.logger.Error(ctx, "tally record failed",
			logger.String("level", outcome.Level),
			logger.Int("overallScore", outcome.OverallScore),
			logger.Error(err),
		)
		return fmt.Errorf("failed to record outcome: %w", err)
	}

	return nil
}

// Pool manages multiple recorders.
type Pool struct {
	recorders []*FeedRecorder
	feed      Feed
	tally     Tally

	// Shutdown control
	shutdown chan struct{}

	// Live recorder tracking
	active atomic.Int32

	// Logging
	logger logger.Logger
}

// NewPool creates a new recorder pool.
func NewPool(recorderCount int, feed Feed, tally Tally) *Pool {
	if recorderCount < 1 {
		recorderCount = runtime.NumCPU()
	}

	pool := &Pool{
		recorders: make([]*FeedRecorder, recorderCount),
		feed:      feed,
		tally:     tally,
		shutdown:  make(chan struct{}),
		logger:    logger.Get().Named("recorder-pool"),
	}

	for i := 0; i < recorderCount; i++ {
		pool.recorders[i] = NewFeedRecorder(
			feed,
			tally,
			WithName("recorder-"+strconv.Itoa(i)),
		)
	}

	// Initialize recorder metrics
	metrics.UpdateRecorderActiveCount(0)

	return pool
}

// Start starts all recorders in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, rec := range p.recorders {
		rec := rec
		go func() {
			metrics.UpdateRecorderActiveCount(int(p.active.Add(1)))
			defer func() {
				metrics.UpdateRecorderActiveCount(int(p.active.Add(-1)))
			}()
			rec.Run(ctx)
		}()
	}

	// Start metrics updater
	go p.startMetricsUpdater(ctx)
}

// Active returns the number of recorders currently running.
func (p *Pool) Active() int {
	return int(p.active.Load())
}

// Size returns the number of recorders managed by the pool.
func (p *Pool) Size() int {
	return len(p.recorders)
}

// startMetricsUpdater starts a background goroutine that updates recorder metrics.
func (p *Pool) startMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(metricsUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.shutdown:
			return
		case <-ticker.C:
			metrics.UpdateRecorderActiveCount(p.Active())
		}
	}
}

// Stop stops all recorders without waiting for the feed to drain.
func (p *Pool) Stop() {
	// Signal shutdown to the metrics updater
	close(p.shutdown)

	// Signal shutdown to all recorders
	for i, rec := range p.recorders {
		stopCtx, cancel := context.WithTimeout(context.Background(), recorderShutdownTimeout)
		if err := rec.Shutdown(stopCtx); err != nil {
			p.logger.Warn(context.Background(), "recorder stop timed out", logger.Int("recorder_id", i))
		}
		cancel()
	}
}

// Shutdown closes the feed and waits for recorders to drain it.
func (p *Pool) Shutdown(ctx context.Context) error {
	// First close the feed to stop new outcomes; recorders exit once drained
	if closer, ok := p.feed.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			p.logger.Error(ctx, "error closing feed", logger.Error(err))
		}
	}

	// Signal shutdown to the metrics updater
	close(p.shutdown)

	// Wait for all recorders to finish or context to timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	for i, rec := range p.recorders {
		select {
		case <-rec.done:
		case <-shutdownCtx.Done():
			p.logger.Warn(ctx, "recorder shutdown timed out", logger.Int("recorder_id", i))
		}
	}

	return nil
}
