package probe

import "time"

// Config holds configuration for a probe run
type Config struct {
	BaseURL          string        // Base URL of the service
	NumConversations int           // Number of conversations to submit
	Workers          int           // Number of concurrent workers
	Timeout          time.Duration // HTTP request timeout
	OutputFile       string        // Output file for outcomes
	LogFile          string        // Log file for probe output
	Verbose          bool          // Enable verbose logging
}

// message mirrors the wire shape of a conversation message.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// submission is one analyze request ready to go on the wire.
type submission struct {
	Archetype string    `json:"archetype"`
	UserID    string    `json:"userId"`
	Messages  []message `json:"conversation"`
}

// analyzeRequest is the POST /analyze body.
type analyzeRequest struct {
	Conversation []message `json:"conversation"`
	UserID       string    `json:"userId"`
}

// analysisPayload carries the fields of the report the probe inspects.
type analysisPayload struct {
	OverallScore     int            `json:"overallScore"`
	ProficiencyLevel string         `json:"proficiencyLevel"`
	DimensionScores  map[string]int `json:"dimensionScores"`
}

// analyzeResponse is the POST /analyze success envelope.
type analyzeResponse struct {
	Success  bool            `json:"success"`
	UserID   string          `json:"userId"`
	Analysis analysisPayload `json:"analysis"`
}

// levelBand is one tier of the score-to-level mapping served by /dimensions.
type levelBand struct {
	Level string `json:"level"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// dimensionInfo is the catalog entry for one scoring dimension.
type dimensionInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MaxScore int    `json:"maxScore"`
}

// dimensionsPayload is the GET /dimensions body.
type dimensionsPayload struct {
	Dimensions        []dimensionInfo `json:"dimensions"`
	ProficiencyLevels []levelBand     `json:"proficiencyLevels"`
}

// Outcome records what the service said about one submitted conversation.
type Outcome struct {
	Archetype string `json:"archetype"`
	WantLevel string `json:"wantLevel"`
	UserID    string `json:"userId"`
	Score     int    `json:"score"`
	Level     string `json:"level"`
}

// Stats holds probe statistics
type Stats struct {
	ConversationsGenerated int
	Submitted              int
	Successful             int
	Failed                 int
	RecordedByService      int64
	StartTime              time.Time
	EndTime                time.Time
	Duration               time.Duration
}
