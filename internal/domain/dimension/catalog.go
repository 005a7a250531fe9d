package dimension

import "github.com/rubriq/rubriq/internal/domain/types"

// MaxDimensionScore is the nominal per-dimension contribution to the
// overall score.
const MaxDimensionScore = 25

// Catalog describes every dimension in report order. It is static data;
// serving it never runs an analyzer. A fresh slice is returned on each
// call so callers can't mutate shared state.
func Catalog() []types.DimensionInfo {
	return []types.DimensionInfo{
		{
			ID:          PromptEngineeringID,
			Name:        "Prompt Engineering",
			Description: "How clearly and effectively prompts are constructed",
			MaxScore:    MaxDimensionScore,
			SubCriteria: []types.SubCriterionInfo{
				{Name: subSpecificity, Description: "Prompt length and specific, non-vague wording", MaxScore: capSpecificity},
				{Name: subStructure, Description: "Bullets, numbering and paragraph structure", MaxScore: capStructure},
				{Name: subContext, Description: "Background, examples and constraints supplied", MaxScore: capContext},
				{Name: subRoleDefinition, Description: "Roles assigned to the assistant", MaxScore: capRoleDefinition},
			},
		},
		{
			ID:          IterativeRefinementID,
			Name:        "Iterative Refinement",
			Description: "How follow-up messages steer and improve responses",
			MaxScore:    MaxDimensionScore,
			SubCriteria: []types.SubCriterionInfo{
				{Name: subPrecision, Description: "Targeted, quantified change requests", MaxScore: capPrecision},
				{Name: subErrorCorrection, Description: "Mistakes called out and corrected", MaxScore: capErrorCorrection},
				{Name: subProgressive, Description: "Each turn builds on the previous output", MaxScore: capProgressive},
			},
		},
		{
			ID:          ProblemSolvingID,
			Name:        "Problem Solving",
			Description: "How the conversation decomposes and pursues its task",
			MaxScore:    MaxDimensionScore,
			SubCriteria: []types.SubCriterionInfo{
				{Name: subDecomposition, Description: "Complex requests broken into steps", MaxScore: capDecomposition},
				{Name: subSequencing, Description: "Follow-ups ordered from basic to advanced on a focused topic", MaxScore: capSequencing},
				{Name: subGoalOrientation, Description: "Goal stated up front and confirmed at the end", MaxScore: capGoalOrientation},
			},
		},
		{
			ID:          CriticalThinkingID,
			Name:        "Critical Thinking",
			Description: "How critically responses are questioned and assessed",
			MaxScore:    MaxDimensionScore,
			SubCriteria: []types.SubCriterionInfo{
				{Name: subVerification, Description: "Verification and source requests", MaxScore: capVerification},
				{Name: subBiasDetection, Description: "Bias probing and alternative viewpoints", MaxScore: capBiasDetection},
				{Name: subQualityAssessment, Description: "Quality judgments and improvement asks", MaxScore: capQualityAssessment},
			},
		},
	}
}
