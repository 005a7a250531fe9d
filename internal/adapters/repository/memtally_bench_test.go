package repository

import (
	"context"
	"testing"

	"github.com/rubriq/rubriq/internal/domain/model"
)

func benchOutcome(score int) model.Outcome {
	return model.Outcome{
		OverallScore: score % 101,
		Level:        "Proficient",
		Dimensions: map[string]int{
			"promptEngineering":   score % 26,
			"iterativeRefinement": (score + 7) % 26,
			"problemSolving":      (score + 13) % 26,
			"criticalThinking":    (score + 19) % 26,
		},
	}
}

func BenchmarkMemTally_Record(b *testing.B) {
	ctx := context.Background()
	tally := NewMemTally(ctx)
	defer tally.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tally.Record(ctx, benchOutcome(i))
	}
}

func BenchmarkMemTally_RecordParallel(b *testing.B) {
	ctx := context.Background()
	tally := NewMemTally(ctx)
	defer tally.Close()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_ = tally.Record(ctx, benchOutcome(i))
			i++
		}
	})
}

func BenchmarkMemTally_Summary(b *testing.B) {
	ctx := context.Background()
	tally := NewMemTally(ctx)
	defer tally.Close()

	for i := 0; i < 1000; i++ {
		_ = tally.Record(ctx, benchOutcome(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tally.Summary(ctx)
	}
}
