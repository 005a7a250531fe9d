// Package dimension implements the four proficiency dimensions scored by
// the analysis engine: prompt engineering, iterative refinement, problem
// solving and critical thinking.
//
// Every analyzer is a pure function of the conversation. Marker tables are
// fixed package data, each sub-criterion is scored per user message with a
// max fold across messages, and the result is clamped to the sub-criterion
// cap. Analyzers hold no state and are safe for concurrent use.
package dimension

import (
	"github.com/rubriq/rubriq/internal/domain/model"
	"github.com/rubriq/rubriq/internal/domain/types"
)

// Dimension ids used as JSON keys in reports and in the catalog.
const (
	PromptEngineeringID   = "promptEngineering"
	IterativeRefinementID = "iterativeRefinement"
	ProblemSolvingID      = "problemSolving"
	CriticalThinkingID    = "criticalThinking"
)

// NoUserPromptsFeedback is the single feedback line every analyzer returns
// when the conversation has no user messages.
const NoUserPromptsFeedback = "No user prompts found in conversation"

// Analyzer scores one proficiency dimension of a conversation.
type Analyzer interface {
	// ID returns the stable dimension id used as the report map key.
	ID() string
	// Name returns the human-readable dimension name.
	Name() string
	// Analyze scores the conversation for this dimension.
	Analyze(conv model.Conversation) types.DimensionResult
}

// Defaults returns the four analyzers in report order.
func Defaults() []Analyzer {
	return []Analyzer{
		NewPromptEngineering(),
		NewIterativeRefinement(),
		NewProblemSolving(),
		NewCriticalThinking(),
	}
}

// emptyResult is the zero-score result for conversations without user
// messages: every sub-criterion present at 0 and the standard feedback line.
func emptyResult(subs []string) types.DimensionResult {
	breakdown := make(map[string]int, len(subs))
	for _, s := range subs {
		breakdown[s] = 0
	}
	return types.DimensionResult{
		Score:     0,
		Breakdown: breakdown,
		Feedback:  []string{NoUserPromptsFeedback},
	}
}

// feedbackFor collects the advisory line of every sub-criterion scoring
// below 3, falling back to the single positive line when none do.
func feedbackFor(subs []string, breakdown map[string]int, advisories map[string]string, positive string) []string {
	var fb []string
	for _, s := range subs {
		if breakdown[s] < 3 {
			fb = append(fb, advisories[s])
		}
	}
	if len(fb) == 0 {
		fb = append(fb, positive)
	}
	return fb
}

func clamp(score, limit int) int {
	if score > limit {
		return limit
	}
	return score
}
