package analysis

import (
	"fmt"
	"math"

	"github.com/rubriq/rubriq/internal/domain/model"
	"github.com/rubriq/rubriq/internal/domain/text"
	"github.com/rubriq/rubriq/internal/domain/types"
)

// Reading and writing rates for the duration estimate, words per minute.
// The transcript is costed twice: once read, once written.
const (
	readRateWPM  = 200
	writeRateWPM = 40
)

// Stats summarizes conv: per-role message counts, mean word counts and an
// estimated conversation duration. System messages count only toward the
// total.
func Stats(conv model.Conversation) types.ConversationStats {
	var (
		userWords, assistantWords int
		userCount, assistantCount int
		totalWords                int
	)
	for _, m := range conv {
		words := text.WordCount(m.Content)
		totalWords += words
		switch m.Role {
		case model.RoleUser:
			userCount++
			userWords += words
		case model.RoleAssistant:
			assistantCount++
			assistantWords += words
		}
	}

	return types.ConversationStats{
		TotalMessages:               len(conv),
		UserMessages:                userCount,
		AssistantMessages:           assistantCount,
		AvgWordsPerUserMessage:      roundedMean(userWords, userCount),
		AvgWordsPerAssistantMessage: roundedMean(assistantWords, assistantCount),
		EstimatedDuration:           estimatedDuration(totalWords),
	}
}

func roundedMean(sum, n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

// estimatedDuration rounds up to whole minutes and floors at one minute.
func estimatedDuration(totalWords int) string {
	minutes := float64(totalWords)/readRateWPM + float64(totalWords)/writeRateWPM
	if minutes <= 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", int(math.Ceil(minutes)))
}
