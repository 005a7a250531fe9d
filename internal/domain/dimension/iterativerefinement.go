package dimension

import (
	"strings"

	"github.com/rubriq/rubriq/internal/domain/model"
	"github.com/rubriq/rubriq/internal/domain/text"
	"github.com/rubriq/rubriq/internal/domain/types"
)

// Sub-criterion keys and caps for iterative refinement.
const (
	subPrecision       = "precision"
	subErrorCorrection = "errorCorrection"
	subProgressive     = "progressiveImprovement"

	capPrecision       = 8
	capErrorCorrection = 8
	capProgressive     = 9
)

var iterativeRefinementSubs = []string{subPrecision, subErrorCorrection, subProgressive}

var iterativeRefinementAdvisories = map[string]string{
	subPrecision:       "Name the exact part of the response you want changed",
	subErrorCorrection: "Point out mistakes directly and state the correct version",
	subProgressive:     "Build on previous responses across turns instead of restarting",
}

const iterativeRefinementPositive = "Effective iterative refinement across conversation turns"

// IterativeRefinement scores how follow-up messages steer the assistant:
// precise change requests, error corrections and progressive building.
type IterativeRefinement struct{}

// NewIterativeRefinement creates the iterative refinement analyzer.
func NewIterativeRefinement() *IterativeRefinement {
	return &IterativeRefinement{}
}

// ID returns the stable dimension id.
func (a *IterativeRefinement) ID() string { return IterativeRefinementID }

// Name returns the human-readable dimension name.
func (a *IterativeRefinement) Name() string { return "Iterative Refinement" }

// Analyze scores the user messages of conv.
func (a *IterativeRefinement) Analyze(conv model.Conversation) types.DimensionResult {
	users := conv.UserMessages()
	if len(users) == 0 {
		return emptyResult(iterativeRefinementSubs)
	}

	breakdown := map[string]int{
		subPrecision:       0,
		subErrorCorrection: 0,
		subProgressive:     0,
	}
	for _, m := range users {
		lowered := strings.ToLower(m.Content)
		breakdown[subPrecision] = max(breakdown[subPrecision], a.precision(lowered))
		breakdown[subErrorCorrection] = max(breakdown[subErrorCorrection], a.errorCorrection(lowered))
	}
	// Progressive improvement needs at least two user messages and is
	// evaluated from the second onward; with one message the slice below
	// is empty and the score stays 0.
	for _, m := range users[1:] {
		lowered := strings.ToLower(m.Content)
		breakdown[subProgressive] = max(breakdown[subProgressive], a.progressive(lowered))
	}

	return types.DimensionResult{
		Score:     breakdown[subPrecision] + breakdown[subErrorCorrection] + breakdown[subProgressive],
		Breakdown: breakdown,
		Feedback:  feedbackFor(iterativeRefinementSubs, breakdown, iterativeRefinementAdvisories, iterativeRefinementPositive),
	}
}

func (a *IterativeRefinement) precision(lowered string) int {
	score := 0
	if text.ContainsAny(lowered, targetedChangeMarkers) {
		score += 3
	}
	if text.ContainsAny(lowered, priorOutputMarkers) {
		score += 3
	}
	if text.ContainsAny(lowered, quantifiedAdjustments) {
		score += 2
	}
	return clamp(score, capPrecision)
}

func (a *IterativeRefinement) errorCorrection(lowered string) int {
	score := 0
	if text.ContainsAny(lowered, errorAcknowledgments) {
		score += 4
	}
	if text.ContainsAny(lowered, correctiveInstructions) {
		score += 4
	}
	return clamp(score, capErrorCorrection)
}

func (a *IterativeRefinement) progressive(lowered string) int {
	score := 0
	if text.ContainsAny(lowered, improvementLanguage) {
		score += 3
	}
	if text.ContainsAny(lowered, buildingLanguage) {
		score += 3
	}
	if text.ContainsAny(lowered, approvalThenPush) {
		score += 3
	}
	return clamp(score, capProgressive)
}
