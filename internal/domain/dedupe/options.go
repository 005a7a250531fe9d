package dedupe

// defaultCapacity covers the usual feedback volume: a handful of advisory
// lines per dimension.
const defaultCapacity = 16

// Option configures a Set.
type Option func(*Set)

// WithCapacity sets the initial capacity of the set. Non-positive values
// keep the default.
func WithCapacity(n int) Option {
	return func(s *Set) {
		if n > 0 {
			s.capacity = n
		}
	}
}
