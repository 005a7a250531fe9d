// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rubriq/rubriq/internal/domain/analysis"
	"github.com/rubriq/rubriq/internal/domain/model"
	"github.com/rubriq/rubriq/internal/domain/types"
	"github.com/rubriq/rubriq/pkg/metrics"
)

// defaultUserID is applied when the caller omits userId.
const defaultUserID = "anonymous"

// AnalyzeHandler handles conversation analysis requests.
type AnalyzeHandler struct {
	analyzer        Analyzer
	maxContentChars int
	production      bool
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(analyzer Analyzer, maxContentChars int, production bool) *AnalyzeHandler {
	if maxContentChars <= 0 {
		maxContentChars = defaultMaxContentChars
	}
	return &AnalyzeHandler{
		analyzer:        analyzer,
		maxContentChars: maxContentChars,
		production:      production,
	}
}

// analyzeRequest mirrors the OpenAPI schema for POST /analyze. Conversation
// and metadata stay raw so shape violations can be reported precisely.
type analyzeRequest struct {
	Conversation json.RawMessage `json:"conversation"`
	UserID       string          `json:"userId"`
	Metadata     json.RawMessage `json:"metadata"`
}

// rawMessage defers content decoding so type violations carry the index
// of the offending element.
type rawMessage struct {
	Role    *string         `json:"role"`
	Content json.RawMessage `json:"content"`
}

// analyzeResponse is the success envelope for POST /analyze.
type analyzeResponse struct {
	Success      bool                 `json:"success"`
	UserID       string               `json:"userId"`
	Analysis     types.AnalysisReport `json:"analysis"`
	Metadata     json.RawMessage      `json:"metadata,omitempty"`
	AnalysisTime string               `json:"analysisTime"`
}

// HandleAnalyze handles POST /analyze requests.
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeNotFound(w)
		return
	}
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordValidationFailure("malformed_body")
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadBody)
		return
	}

	conv, rule, err := h.parseConversation(req.Conversation)
	if err != nil {
		metrics.RecordValidationFailure(rule)
		writeError(w, http.StatusBadRequest, "validation_error", err)
		return
	}

	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = defaultUserID
	}

	start := time.Now()
	report, err := h.analyzer.Analyze(r.Context(), conv)
	if err != nil {
		if errors.Is(err, analysis.ErrInvalidConversation) {
			metrics.RecordValidationFailure("invalid_conversation")
			writeError(w, http.StatusBadRequest, "validation_error", err)
			return
		}
		h.writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		Success:      true,
		UserID:       userID,
		Analysis:     report,
		Metadata:     req.Metadata,
		AnalysisTime: fmt.Sprintf("%dms", time.Since(start).Milliseconds()),
	})
}

// parseConversation validates the raw conversation payload and converts it
// into the domain shape. The returned rule names the violated constraint
// for metrics; the error carries the client-facing message.
func (h *AnalyzeHandler) parseConversation(raw json.RawMessage) (model.Conversation, string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, "conversation_required", errors.New("conversation is required")
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, "conversation_not_array", errors.New("conversation must be an array")
	}
	if len(elements) == 0 {
		return nil, "conversation_empty", errors.New("conversation must not be empty")
	}

	conv := make(model.Conversation, 0, len(elements))
	for i, element := range elements {
		var msg rawMessage
		if err := json.Unmarshal(element, &msg); err != nil {
			return nil, "message_not_object", fmt.Errorf("conversation[%d]: must be a {role, content} object", i)
		}
		if msg.Role == nil || strings.TrimSpace(*msg.Role) == "" {
			return nil, "missing_role", fmt.Errorf("conversation[%d]: missing role", i)
		}
		role := model.Role(*msg.Role)
		if !role.Valid() {
			return nil, "invalid_role", fmt.Errorf("conversation[%d]: role must be one of user, assistant, system", i)
		}
		if len(msg.Content) == 0 || string(msg.Content) == "null" {
			return nil, "missing_content", fmt.Errorf("conversation[%d]: missing content", i)
		}
		var content string
		if err := json.Unmarshal(msg.Content, &content); err != nil {
			return nil, "content_not_string", fmt.Errorf("conversation[%d]: content must be a string", i)
		}
		if utf8.RuneCountInString(content) > h.maxContentChars {
			return nil, "content_too_long", fmt.Errorf("conversation[%d]: content exceeds %d characters", i, h.maxContentChars)
		}
		conv = append(conv, model.Message{Role: role, Content: content})
	}
	return conv, "", nil
}

// writeInternalError redacts the underlying failure outside development.
func (h *AnalyzeHandler) writeInternalError(w http.ResponseWriter, err error) {
	metrics.RecordErrorByType("analyze_error", "high")
	if h.production {
		writeError(w, http.StatusInternalServerError, "internal_error", ErrInternal)
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", err)
}
