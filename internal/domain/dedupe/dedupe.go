// Package dedupe provides first-occurrence deduplication of feedback lines.
//
// Analyzer feedback overlaps on purpose (several analyzers emit the same
// line for a conversation without user messages), so report assembly runs
// every line through a Set before it reaches the client. Order matters:
// the first analyzer to say something keeps its position.
package dedupe

// Set records seen lines and preserves first-occurrence order. A Set is
// built per analysis and is not safe for concurrent use.
type Set struct {
	seen     map[string]struct{}
	out      []string
	capacity int
}

// NewSet creates an empty set.
func NewSet(opts ...Option) *Set {
	s := &Set{
		capacity: defaultCapacity,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.seen = make(map[string]struct{}, s.capacity)
	s.out = make([]string, 0, s.capacity)
	return s
}

// SeenAndRecord checks whether line was already recorded and records it if
// not. Returns true if line was already seen, false if it was newly
// recorded.
func (s *Set) SeenAndRecord(line string) bool {
	if _, ok := s.seen[line]; ok {
		return true
	}
	s.seen[line] = struct{}{}
	s.out = append(s.out, line)
	return false
}

// Lines returns the recorded lines in first-occurrence order. The returned
// slice is the set's backing store; callers must not mutate it while the
// set is still in use.
func (s *Set) Lines() []string {
	return s.out
}

// Size returns the number of distinct recorded lines.
func (s *Set) Size() int {
	return len(s.out)
}

// Merge flattens the lists into one slice, keeping only the first
// occurrence of every line. A nil result means no list contributed
// anything.
func Merge(lists ...[]string) []string {
	s := NewSet()
	for _, list := range lists {
		for _, line := range list {
			s.SeenAndRecord(line)
		}
	}
	if s.Size() == 0 {
		return nil
	}
	return s.Lines()
}
