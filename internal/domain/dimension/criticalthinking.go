package dimension

import (
	"strings"

	"github.com/rubriq/rubriq/internal/domain/model"
	"github.com/rubriq/rubriq/internal/domain/text"
	"github.com/rubriq/rubriq/internal/domain/types"
)

// Sub-criterion keys and caps for critical thinking.
const (
	subVerification      = "verification"
	subBiasDetection     = "biasDetection"
	subQualityAssessment = "qualityAssessment"

	capVerification      = 8
	capBiasDetection     = 8
	capQualityAssessment = 9
)

var criticalThinkingSubs = []string{subVerification, subBiasDetection, subQualityAssessment}

var criticalThinkingAdvisories = map[string]string{
	subVerification:      "Ask for claims to be verified or backed by sources",
	subBiasDetection:     "Probe for bias and ask for alternative perspectives",
	subQualityAssessment: "Assess response quality and ask for targeted improvements",
}

const criticalThinkingPositive = "Strong critical engagement with the responses received"

// CriticalThinking scores how critically the user treats answers:
// verification requests, bias probing and quality assessment.
type CriticalThinking struct{}

// NewCriticalThinking creates the critical thinking analyzer.
func NewCriticalThinking() *CriticalThinking {
	return &CriticalThinking{}
}

// ID returns the stable dimension id.
func (a *CriticalThinking) ID() string { return CriticalThinkingID }

// Name returns the human-readable dimension name.
func (a *CriticalThinking) Name() string { return "Critical Thinking" }

// Analyze scores the user messages of conv.
func (a *CriticalThinking) Analyze(conv model.Conversation) types.DimensionResult {
	users := conv.UserMessages()
	if len(users) == 0 {
		return emptyResult(criticalThinkingSubs)
	}

	breakdown := map[string]int{
		subVerification:      0,
		subBiasDetection:     0,
		subQualityAssessment: 0,
	}
	for _, m := range users {
		lowered := strings.ToLower(m.Content)
		breakdown[subVerification] = max(breakdown[subVerification], a.verification(lowered))
		breakdown[subBiasDetection] = max(breakdown[subBiasDetection], a.biasDetection(lowered))
		breakdown[subQualityAssessment] = max(breakdown[subQualityAssessment], a.qualityAssessment(lowered))
	}

	return types.DimensionResult{
		Score:     breakdown[subVerification] + breakdown[subBiasDetection] + breakdown[subQualityAssessment],
		Breakdown: breakdown,
		Feedback:  feedbackFor(criticalThinkingSubs, breakdown, criticalThinkingAdvisories, criticalThinkingPositive),
	}
}

func (a *CriticalThinking) verification(lowered string) int {
	score := 0
	if text.ContainsAny(lowered, verificationRequests) {
		score += 3
	}
	if text.ContainsAny(lowered, doubtExpressions) {
		score += 2
	}
	if text.ContainsAny(lowered, sourceRequests) {
		score += 2
	}
	return clamp(score, capVerification)
}

func (a *CriticalThinking) biasDetection(lowered string) int {
	score := 0
	if text.ContainsAny(lowered, biasVocabulary) {
		score += 3
	}
	if text.ContainsAny(lowered, challengeQuestions) {
		score += 2
	}
	if text.ContainsAny(lowered, alternativeViewpoints) {
		score += 2
	}
	return clamp(score, capBiasDetection)
}

func (a *CriticalThinking) qualityAssessment(lowered string) int {
	score := 0
	if text.ContainsAny(lowered, qualityVocabulary) {
		score += 3
	}
	if text.ContainsAny(lowered, improvementInstructions) {
		score += 3
	}
	if text.ContainsAny(lowered, comparativePhrasing) {
		score += 2
	}
	return clamp(score, capQualityAssessment)
}
