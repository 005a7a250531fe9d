// Package feed defines the contract for publishing and consuming analysis outcomes.
package feed

// Option applies a configuration option to the InMemoryFeed.
type Option func(*InMemoryFeed)

// WithCapacity sets the maximum number of outcomes the feed can buffer.
func WithCapacity(capacity int) Option {
	return func(f *InMemoryFeed) {
		if capacity > 0 {
			f.capacity = capacity
		}
	}
}
