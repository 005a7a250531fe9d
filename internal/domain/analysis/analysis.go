// Package analysis aggregates the dimension analyzers into conversation
// reports: overall score, proficiency level, per-dimension breakdowns,
// merged feedback and transcript stats.
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/rubriq/rubriq/internal/domain/dedupe"
	"github.com/rubriq/rubriq/internal/domain/dimension"
	"github.com/rubriq/rubriq/internal/domain/model"
	"github.com/rubriq/rubriq/internal/domain/types"
	"github.com/rubriq/rubriq/pkg/logger"
	"github.com/rubriq/rubriq/pkg/metrics"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
)

// Engine runs the dimension analyzers over a conversation and folds their
// results into an AnalysisReport. The engine is stateless and safe for
// concurrent use; each call fans out one goroutine per analyzer and spawns
// nothing persistent.
type Engine struct {
	analyzers []dimension.Analyzer
	log       logger.Logger
}

// New creates an engine with the default analyzer set.
func New(opts ...Option) *Engine {
	e := &Engine{
		analyzers: dimension.Defaults(),
		log:       logger.Named("analysis"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate checks that every message carries a known role. Violations name
// the offending index and wrap ErrInvalidConversation. A nil slice is a
// valid, empty conversation.
func Validate(conv model.Conversation) error {
	for i, m := range conv {
		if m.Role == "" {
			return fmt.Errorf("conversation[%d]: missing role: %w", i, ErrInvalidConversation)
		}
		if !m.Role.Valid() {
			return fmt.Errorf("conversation[%d]: unknown role %q: %w", i, m.Role, ErrInvalidConversation)
		}
	}
	return nil
}

// Analyze validates conv, scores every dimension concurrently and
// aggregates the report. A panicking analyzer is isolated: it contributes
// score 0, an empty breakdown and one diagnostic feedback line while the
// other analyzers complete normally.
func (e *Engine) Analyze(ctx context.Context, conv model.Conversation) (types.AnalysisReport, error) {
	if err := Validate(conv); err != nil {
		return types.AnalysisReport{}, err
	}

	results := make([]types.DimensionResult, len(e.analyzers))
	var wg conc.WaitGroup
	for i, a := range e.analyzers {
		i, a := i, a
		wg.Go(func() {
			if r := panics.Try(func() { results[i] = a.Analyze(conv) }); r != nil {
				e.log.Error(ctx, "analyzer panicked",
					logger.String("dimension", a.ID()),
					logger.Any("panic", r.Value))
				metrics.RecordAnalyzerPanic(a.ID())
				results[i] = failedResult(a)
			}
		})
	}
	wg.Wait()

	report := types.AnalysisReport{
		DimensionScores:   make(map[string]int, len(e.analyzers)),
		DetailedBreakdown: make(map[string]types.DimensionResult, len(e.analyzers)),
		AnalysisTimestamp: time.Now().UTC(),
		ConversationStats: Stats(conv),
	}
	feedback := make([][]string, 0, len(e.analyzers))
	for i, a := range e.analyzers {
		report.DimensionScores[a.ID()] = results[i].Score
		report.DetailedBreakdown[a.ID()] = results[i]
		report.OverallScore += results[i].Score
		feedback = append(feedback, results[i].Feedback)
		metrics.ObserveDimensionScore(a.ID(), results[i].Score)
	}
	report.ProficiencyLevel = Level(report.OverallScore)
	report.Feedback = dedupe.Merge(feedback...)

	metrics.ObserveOverallScore(report.OverallScore)
	metrics.RecordProficiencyLevel(report.ProficiencyLevel)
	return report, nil
}

// Catalog returns the static dimension catalog. Serving it never runs an
// analyzer.
func (e *Engine) Catalog() []types.DimensionInfo {
	return dimension.Catalog()
}

// failedResult stands in for a panicked analyzer.
func failedResult(a dimension.Analyzer) types.DimensionResult {
	return types.DimensionResult{
		Score:     0,
		Breakdown: map[string]int{},
		Feedback:  []string{fmt.Sprintf("%s analysis failed and scored 0", a.Name())},
	}
}
