// Package types contains the report shapes shared across the application.
package types

import "time"

// DimensionResult is one analyzer's contribution to a report.
type DimensionResult struct {
	Score     int            `json:"score"`
	Breakdown map[string]int `json:"breakdown"`
	Feedback  []string       `json:"feedback"`
}

// ConversationStats summarizes the analyzed transcript.
type ConversationStats struct {
	TotalMessages               int    `json:"totalMessages"`
	UserMessages                int    `json:"userMessages"`
	AssistantMessages           int    `json:"assistantMessages"`
	AvgWordsPerUserMessage      int    `json:"avgWordsPerUserMessage"`
	AvgWordsPerAssistantMessage int    `json:"avgWordsPerAssistantMessage"`
	EstimatedDuration           string `json:"estimatedDuration"`
}

// AnalysisReport is the full result of analyzing one conversation.
type AnalysisReport struct {
	OverallScore      int                        `json:"overallScore"`
	ProficiencyLevel  string                     `json:"proficiencyLevel"`
	DimensionScores   map[string]int             `json:"dimensionScores"`
	DetailedBreakdown map[string]DimensionResult `json:"detailedBreakdown"`
	Feedback          []string                   `json:"feedback"`
	AnalysisTimestamp time.Time                  `json:"analysisTimestamp"`
	ConversationStats ConversationStats          `json:"conversationStats"`
}

// SubCriterionInfo describes one scored sub-criterion of a dimension.
type SubCriterionInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxScore    int    `json:"maxScore"`
}

// DimensionInfo describes one analysis dimension in the static catalog.
type DimensionInfo struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	MaxScore    int                `json:"maxScore"`
	SubCriteria []SubCriterionInfo `json:"subCriteria"`
}

// LevelBand maps a proficiency level to its inclusive score range.
type LevelBand struct {
	Level string `json:"level"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}
