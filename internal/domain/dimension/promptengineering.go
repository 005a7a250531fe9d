package dimension

import (
	"strings"

	"github.com/rubriq/rubriq/internal/domain/model"
	"github.com/rubriq/rubriq/internal/domain/text"
	"github.com/rubriq/rubriq/internal/domain/types"
)

// Sub-criterion keys and caps for prompt engineering.
const (
	subSpecificity    = "specificity"
	subStructure      = "structure"
	subContext        = "context"
	subRoleDefinition = "roleDefinition"

	capSpecificity    = 6
	capStructure      = 6
	capContext        = 6
	capRoleDefinition = 7
)

var promptEngineeringSubs = []string{subSpecificity, subStructure, subContext, subRoleDefinition}

var promptEngineeringAdvisories = map[string]string{
	subSpecificity:    "Add specific details and explicit requirements to your prompts",
	subStructure:      "Structure longer prompts with bullet points or numbered lists",
	subContext:        "Provide background context so responses start from your situation",
	subRoleDefinition: "Assign the assistant a role, such as \"act as a senior engineer\"",
}

const promptEngineeringPositive = "Well-constructed prompts with clear specificity and structure"

// PromptEngineering scores how prompts are constructed: specificity,
// structure, supplied context and role definitions.
type PromptEngineering struct{}

// NewPromptEngineering creates the prompt engineering analyzer.
func NewPromptEngineering() *PromptEngineering {
	return &PromptEngineering{}
}

// ID returns the stable dimension id.
func (a *PromptEngineering) ID() string { return PromptEngineeringID }

// Name returns the human-readable dimension name.
func (a *PromptEngineering) Name() string { return "Prompt Engineering" }

// Analyze scores the user messages of conv.
func (a *PromptEngineering) Analyze(conv model.Conversation) types.DimensionResult {
	users := conv.UserMessages()
	if len(users) == 0 {
		return emptyResult(promptEngineeringSubs)
	}

	breakdown := map[string]int{
		subSpecificity:    0,
		subStructure:      0,
		subContext:        0,
		subRoleDefinition: 0,
	}
	for _, m := range users {
		lowered := strings.ToLower(m.Content)
		breakdown[subSpecificity] = max(breakdown[subSpecificity], a.specificity(m.Content, lowered))
		breakdown[subStructure] = max(breakdown[subStructure], a.structure(m.Content))
		breakdown[subContext] = max(breakdown[subContext], a.context(lowered))
		breakdown[subRoleDefinition] = max(breakdown[subRoleDefinition], a.roleDefinition(m.Content))
	}

	return types.DimensionResult{
		Score:     breakdown[subSpecificity] + breakdown[subStructure] + breakdown[subContext] + breakdown[subRoleDefinition],
		Breakdown: breakdown,
		Feedback:  feedbackFor(promptEngineeringSubs, breakdown, promptEngineeringAdvisories, promptEngineeringPositive),
	}
}

func (a *PromptEngineering) specificity(content, lowered string) int {
	score := 0
	words := text.WordCount(content)
	if words > 50 {
		score += 2
	}
	if words > 100 {
		score++
	}
	if text.ContainsAny(lowered, specificLanguage) {
		score += 2
	}
	if !text.ContainsAny(lowered, vagueLanguage) {
		score++
	}
	return clamp(score, capSpecificity)
}

func (a *PromptEngineering) structure(content string) int {
	score := 0
	if text.HasBullets(content) || text.HasNumbering(content) {
		score += 3
	}
	newlines := text.NewlineCount(content)
	if text.HasParagraphBreaks(content) && newlines > 2 {
		score += 2
	}
	if newlines > 4 {
		score++
	}
	return clamp(score, capStructure)
}

func (a *PromptEngineering) context(lowered string) int {
	score := 0
	if text.ContainsAny(lowered, contextLabels) {
		score += 3
	}
	if text.ContainsAny(lowered, exampleMarkers) {
		score += 2
	}
	if text.ContainsAny(lowered, constraintMarkers) {
		score++
	}
	return clamp(score, capContext)
}

// roleDefinition accumulates over every captured role clause in the
// message; overlapping patterns contribute separately and the cap absorbs
// the overlap.
func (a *PromptEngineering) roleDefinition(content string) int {
	score := 0
	for _, role := range text.Roles(content) {
		if len(role) <= 5 {
			continue
		}
		score += 3
		if len(role) > 15 {
			score += 2
		}
		if text.ContainsAny(role, seniorityMarkers) {
			score += 2
		}
	}
	return clamp(score, capRoleDefinition)
}
