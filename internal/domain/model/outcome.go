package model

import "time"

// Outcome captures the aggregate result of a single analysis.
// It carries no conversation content, only the numbers the usage
// tally needs.
type Outcome struct {
	OverallScore int            // aggregated score, 0-100
	Level        string         // proficiency level name
	Dimensions   map[string]int // per-dimension scores keyed by dimension id
	Duration     time.Duration  // wall time the analysis took
}
