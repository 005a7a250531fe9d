package dimension

import (
	"strings"

	"github.com/rubriq/rubriq/internal/domain/model"
	"github.com/rubriq/rubriq/internal/domain/text"
	"github.com/rubriq/rubriq/internal/domain/types"
)

// Sub-criterion keys and caps for problem solving.
const (
	subDecomposition   = "decomposition"
	subSequencing      = "sequencing"
	subGoalOrientation = "goalOrientation"

	capDecomposition   = 8
	capSequencing      = 8
	capGoalOrientation = 9
)

// maxDistinctTopics is the largest topic-keyword set still considered a
// focused conversation.
const maxDistinctTopics = 3

var problemSolvingSubs = []string{subDecomposition, subSequencing, subGoalOrientation}

var problemSolvingAdvisories = map[string]string{
	subDecomposition:   "Break complex requests into explicit steps or parts",
	subSequencing:      "Order follow-up requests so each builds on the previous one",
	subGoalOrientation: "State your goal up front and confirm when it is reached",
}

const problemSolvingPositive = "Clear goal-driven problem solving throughout the conversation"

// ProblemSolving scores how the conversation approaches its task:
// decomposition into steps, sequencing of follow-ups and goal orientation.
type ProblemSolving struct{}

// NewProblemSolving creates the problem solving analyzer.
func NewProblemSolving() *ProblemSolving {
	return &ProblemSolving{}
}

// ID returns the stable dimension id.
func (a *ProblemSolving) ID() string { return ProblemSolvingID }

// Name returns the human-readable dimension name.
func (a *ProblemSolving) Name() string { return "Problem Solving" }

// Analyze scores the user messages of conv. Sequencing and goal
// orientation also look at assistant and system messages for the topic
// and off-topic scans.
func (a *ProblemSolving) Analyze(conv model.Conversation) types.DimensionResult {
	users := conv.UserMessages()
	if len(users) == 0 {
		return emptyResult(problemSolvingSubs)
	}

	breakdown := map[string]int{
		subDecomposition:   0,
		subSequencing:      0,
		subGoalOrientation: 0,
	}
	for _, m := range users {
		lowered := strings.ToLower(m.Content)
		breakdown[subDecomposition] = max(breakdown[subDecomposition], a.decomposition(lowered))
	}
	breakdown[subSequencing] = a.sequencing(conv, users)
	breakdown[subGoalOrientation] = a.goalOrientation(conv, users)

	return types.DimensionResult{
		Score:     breakdown[subDecomposition] + breakdown[subSequencing] + breakdown[subGoalOrientation],
		Breakdown: breakdown,
		Feedback:  feedbackFor(problemSolvingSubs, breakdown, problemSolvingAdvisories, problemSolvingPositive),
	}
}

func (a *ProblemSolving) decomposition(lowered string) int {
	score := 0
	if text.ContainsAny(lowered, stepLanguage) {
		score += 3
	}
	if text.CountWord(lowered, "and") >= 2 {
		score += 2
	}
	if strings.Contains(lowered, "1.") && strings.Contains(lowered, "2.") {
		score += 2
	}
	if text.ContainsAny(lowered, subtaskVocabulary) {
		score++
	}
	return clamp(score, capDecomposition)
}

// sequencing needs at least two user messages; with fewer it is 0 before
// any bonus, including the topic bonus.
func (a *ProblemSolving) sequencing(conv model.Conversation, users []model.Message) int {
	if len(users) < 2 {
		return 0
	}

	score := 0
	escalated := false
	seenBasic := text.ContainsAny(strings.ToLower(users[0].Content), basicMarkers)
	for _, m := range users[1:] {
		lowered := strings.ToLower(m.Content)
		if text.ContainsAny(lowered, continuityPhrases) {
			score += 2
		}
		if seenBasic && text.ContainsAny(lowered, advancedMarkers) {
			escalated = true
		}
		if text.ContainsAny(lowered, basicMarkers) {
			seenBasic = true
		}
	}
	if escalated {
		score += 2
	}
	if a.distinctTopics(conv) <= maxDistinctTopics {
		score += 2
	}
	return clamp(score, capSequencing)
}

// distinctTopics counts topic-table keywords seen anywhere in the
// conversation, any role.
func (a *ProblemSolving) distinctTopics(conv model.Conversation) int {
	found := make(map[string]struct{}, len(topicKeywords))
	for _, m := range conv {
		lowered := strings.ToLower(m.Content)
		for _, kw := range topicKeywords {
			if strings.Contains(lowered, kw) {
				found[kw] = struct{}{}
			}
		}
	}
	return len(found)
}

func (a *ProblemSolving) goalOrientation(conv model.Conversation, users []model.Message) int {
	score := 0
	first := strings.ToLower(users[0].Content)
	last := strings.ToLower(users[len(users)-1].Content)
	if text.ContainsAny(first, objectiveMarkers) {
		score += 3
	}
	if text.ContainsAny(first, actionVerbs) {
		score++
	}
	if text.ContainsAny(last, completionMarkers) {
		score += 3
	}

	onTopic := 0
	for _, m := range conv {
		if !text.ContainsAny(strings.ToLower(m.Content), offTopicMarkers) {
			onTopic++
		}
	}
	if float64(onTopic)/float64(len(conv)) > 0.8 {
		score += 2
	}
	return clamp(score, capGoalOrientation)
}
