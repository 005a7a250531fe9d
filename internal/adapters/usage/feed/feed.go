// Package feed defines the contract for publishing and consuming analysis
// outcomes.
//
// Implementations may use channels or more advanced structures. The default
// is an in-memory bounded feed that drops outcomes instead of blocking the
// request path.
package feed

import (
	"context"
	"sync"

	"github.com/rubriq/rubriq/internal/domain/model"
	"github.com/rubriq/rubriq/pkg/metrics"
)

// defaultCapacity bounds the feed when no option overrides it.
const defaultCapacity = 4096

// Outcome represents the payload type flowing through the feed.
// Using the model.Outcome type for type safety.
type Outcome = model.Outcome

// Feed provides non-blocking publish and channel-based consume semantics.
type Feed interface {
	// Publish adds an outcome to the feed.
	// Returns false if the feed is full or closed and the outcome was dropped.
	Publish(ctx context.Context, o Outcome) bool

	// Consume returns a channel that will receive outcomes as they become
	// available. The channel will be closed when the feed is closed.
	Consume(ctx context.Context) <-chan Outcome

	// Len returns the current number of buffered outcomes.
	Len(ctx context.Context) int

	// Capacity returns the maximum number of outcomes the feed can buffer.
	Capacity() int

	// Close gracefully shuts down the feed.
	// After closing, no new outcomes can be published and consume channels drain.
	Close() error

	// IsClosed returns true if the feed has been closed.
	IsClosed() bool
}

// InMemoryFeed implements Feed using a buffered channel.
type InMemoryFeed struct {
	outcomes chan Outcome
	capacity int

	mu     sync.RWMutex
	closed bool
}

// NewInMemoryFeed creates a new in-memory feed with configuration options.
func NewInMemoryFeed(opts ...Option) *InMemoryFeed {
	f := &InMemoryFeed{
		capacity: defaultCapacity,
	}

	// Apply all options
	for _, opt := range opts {
		opt(f)
	}

	// Initialize the outcomes channel with the configured capacity
	f.outcomes = make(chan Outcome, f.capacity)

	// Initialize metrics
	metrics.UpdateFeedCapacity(f.capacity)
	metrics.UpdateFeedSize(0)
	metrics.UpdateFeedUtilization(0.0)

	return f
}

// Publish adds an outcome to the feed.
func (f *InMemoryFeed) Publish(ctx context.Context, o Outcome) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		metrics.RecordFeedDrop()
		metrics.RecordErrorByType("feed_closed", "warning")
		return false
	}

	select {
	case f.outcomes <- o:
		metrics.RecordFeedEnqueue()
		// Update feed size and utilization
		currentSize := len(f.outcomes)
		metrics.UpdateFeedSize(currentSize)
		metrics.UpdateFeedUtilization(float64(currentSize) / float64(f.capacity))
		return true
	case <-ctx.Done():
		metrics.RecordFeedDrop()
		metrics.RecordErrorByType("feed_context_cancelled", "warning")
		return false // context cancelled
	default:
		metrics.RecordFeedDrop()
		metrics.RecordErrorByType("feed_full", "warning")
		return false // feed is full
	}
}

// Consume returns a channel that will receive outcomes as they become available.
func (f *InMemoryFeed) Consume(ctx context.Context) <-chan Outcome {
	// Wrap the channel to track dequeue metrics
	consumeChan := make(chan Outcome)
	go func() {
		defer close(consumeChan)
		for outcome := range f.outcomes {
			select {
			case consumeChan <- outcome:
				metrics.RecordFeedDequeue()
				// Update feed size and utilization after dequeue
				currentSize := len(f.outcomes)
				metrics.UpdateFeedSize(currentSize)
				metrics.UpdateFeedUtilization(float64(currentSize) / float64(f.capacity))
			case <-ctx.Done():
				// Consumer went away while we held an outcome; count it as dropped
				metrics.RecordFeedDrop()
				return
			}
		}
	}()
	return consumeChan
}

// Len returns the current number of buffered outcomes.
func (f *InMemoryFeed) Len(_ context.Context) int {
	size := len(f.outcomes)
	metrics.UpdateFeedSize(size)
	metrics.UpdateFeedUtilization(float64(size) / float64(f.capacity))
	return size
}

// Capacity returns the maximum number of outcomes the feed can buffer.
func (f *InMemoryFeed) Capacity() int {
	return f.capacity
}

// Close gracefully shuts down the feed.
func (f *InMemoryFeed) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil // already closed
	}

	// Close the outcomes channel to signal consumers to stop
	close(f.outcomes)
	f.closed = true

	return nil
}

// IsClosed returns true if the feed has been closed.
func (f *InMemoryFeed) IsClosed() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.closed
}
