package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rubriq/rubriq/internal/adapters/http/api"
	"github.com/rubriq/rubriq/internal/domain/analysis"
	"github.com/rubriq/rubriq/internal/domain/model"
	"github.com/rubriq/rubriq/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

// Mock implementations for testing
type mockAnalyzer struct {
	report   types.AnalysisReport
	err      error
	lastConv model.Conversation
	calls    int
}

func (m *mockAnalyzer) Analyze(ctx context.Context, conv model.Conversation) (types.AnalysisReport, error) {
	m.calls++
	m.lastConv = conv
	if m.err != nil {
		return types.AnalysisReport{}, m.err
	}
	return m.report, nil
}

type mockCatalog struct {
	dimensions []types.DimensionInfo
	bands      []types.LevelBand
}

func (m *mockCatalog) Dimensions(ctx context.Context) []types.DimensionInfo {
	return m.dimensions
}

func (m *mockCatalog) LevelBands(ctx context.Context) []types.LevelBand {
	return m.bands
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func sampleReport() types.AnalysisReport {
	return types.AnalysisReport{
		OverallScore:     63,
		ProficiencyLevel: "Proficient",
		DimensionScores: map[string]int{
			"promptEngineering":   18,
			"iterativeRefinement": 15,
			"problemSolving":      16,
			"criticalThinking":    14,
		},
		Feedback:          []string{"Clear, specific prompts"},
		AnalysisTimestamp: time.Now().UTC(),
		ConversationStats: types.ConversationStats{
			TotalMessages:     2,
			UserMessages:      1,
			AssistantMessages: 1,
			EstimatedDuration: "1 minute",
		},
	}
}

func TestServer_Register(t *testing.T) {
	Convey("Given a new API server", t, func() {
		deps := &mockDependencies{
			analyzer: &mockAnalyzer{report: sampleReport()},
			catalog: &mockCatalog{
				dimensions: []types.DimensionInfo{{ID: "promptEngineering", Name: "Prompt Engineering", MaxScore: 25}},
				bands:      []types.LevelBand{{Level: "Novice", Min: 0, Max: 40}},
			},
		}
		statsProvider := &mockStatsProvider{stats: map[string]interface{}{"started": true}}
		server := api.NewServer(deps, statsProvider, api.ServerConfig{Version: "test", Commit: "abc123"})
		mux := http.NewServeMux()

		Convey("When registering routes", func() {
			server.Register(context.Background(), mux)

			Convey("Then all expected routes should be registered", func() {
				So(mux, ShouldNotBeNil)
			})

			Convey("And health endpoint should be accessible", func() {
				req := httptest.NewRequest("GET", "/healthz", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			})

			Convey("And metrics endpoint should serve Prometheus exposition", func() {
				req := httptest.NewRequest("GET", "/metrics", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.Len(), ShouldBeGreaterThan, 0)
			})

			Convey("And stats endpoint should be accessible", func() {
				req := httptest.NewRequest("GET", "/stats", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			})

			Convey("And analyze endpoint should be accessible", func() {
				body := `{"conversation": [{"role": "user", "content": "How do I parse JSON in Go?"}]}`
				req := httptest.NewRequest("POST", "/analyze", strings.NewReader(body))
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			})

			Convey("And dimensions endpoint should be accessible", func() {
				req := httptest.NewRequest("GET", "/dimensions", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			})

			Convey("And every response should carry a request identifier", func() {
				req := httptest.NewRequest("GET", "/healthz", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				id := w.Header().Get("X-Request-ID")
				So(id, ShouldStartWith, "req_")
				So(len(id), ShouldEqual, 12)
			})

			Convey("And unknown routes should return the supported operations", func() {
				req := httptest.NewRequest("GET", "/unknown", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusNotFound)

				var response notFoundResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Code, ShouldEqual, "not_found")
				So(response.Operations, ShouldContain, "POST /analyze")
				So(response.Operations, ShouldContain, "GET /dimensions")
				So(response.Operations, ShouldContain, "GET /healthz")
			})

			Convey("And a wrong method on a known route should return the same body", func() {
				req := httptest.NewRequest("GET", "/analyze", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusNotFound)

				var response notFoundResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Operations, ShouldContain, "POST /analyze")
			})
		})
	})
}

func TestAnalyzeHandler_HandleAnalyze(t *testing.T) {
	Convey("Given an analyze handler", t, func() {
		analyzer := &mockAnalyzer{report: sampleReport()}
		handler := api.NewAnalyzeHandler(analyzer, 0, false)

		post := func(body string) *httptest.ResponseRecorder {
			req := httptest.NewRequest("POST", "/analyze", strings.NewReader(body))
			w := httptest.NewRecorder()
			handler.HandleAnalyze(w, req)
			return w
		}

		Convey("When handling a valid request", func() {
			w := post(`{"conversation": [{"role": "user", "content": "Write a binary search in Go. The input slice is sorted ascending."}]}`)

			Convey("Then it should return the analysis envelope", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var response analyzeResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Success, ShouldBeTrue)
				So(response.UserID, ShouldEqual, "anonymous")
				So(response.Analysis.OverallScore, ShouldEqual, 63)
				So(response.Analysis.ProficiencyLevel, ShouldEqual, "Proficient")
				So(response.AnalysisTime, ShouldEndWith, "ms")
			})

			Convey("And the conversation should reach the analyzer decoded", func() {
				So(analyzer.calls, ShouldEqual, 1)
				So(len(analyzer.lastConv), ShouldEqual, 1)
				So(analyzer.lastConv[0].Role, ShouldEqual, model.RoleUser)
			})
		})

		Convey("When a userId is provided", func() {
			w := post(`{"conversation": [{"role": "user", "content": "hello"}], "userId": "user-42"}`)

			Convey("Then it should be echoed back", func() {
				var response analyzeResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.UserID, ShouldEqual, "user-42")
			})
		})

		Convey("When metadata is provided", func() {
			w := post(`{"conversation": [{"role": "user", "content": "hello"}], "metadata": {"sessionId": "abc-123"}}`)

			Convey("Then it should be echoed back untouched", func() {
				var response analyzeResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(string(response.Metadata), ShouldContainSubstring, "sessionId")
				So(string(response.Metadata), ShouldContainSubstring, "abc-123")
			})
		})

		Convey("When the conversation field is missing", func() {
			w := post(`{"userId": "user-42"}`)

			Convey("Then it should reject with the required rule", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var response errorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Code, ShouldEqual, "validation_error")
				So(response.Message, ShouldEqual, "conversation is required")
				So(analyzer.calls, ShouldEqual, 0)
			})
		})

		Convey("When the conversation is null", func() {
			w := post(`{"conversation": null}`)

			Convey("Then it should reject with the required rule", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var response errorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Message, ShouldEqual, "conversation is required")
			})
		})

		Convey("When the conversation is not an array", func() {
			w := post(`{"conversation": "not an array"}`)

			Convey("Then it should reject with the array rule", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var response errorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Message, ShouldContainSubstring, "must be an array")
			})
		})

		Convey("When the conversation is empty", func() {
			w := post(`{"conversation": []}`)

			Convey("Then it should reject with the non-empty rule", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var response errorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Message, ShouldEqual, "conversation must not be empty")
			})
		})

		Convey("When an element is not an object", func() {
			w := post(`{"conversation": [42]}`)

			Convey("Then it should name the offending index", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var response errorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Message, ShouldContainSubstring, "conversation[0]")
			})
		})

		Convey("When a message has no role", func() {
			w := post(`{"conversation": [{"content": "hi"}]}`)

			Convey("Then it should name the missing role", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var response errorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Message, ShouldEqual, "conversation[0]: missing role")
			})
		})

		Convey("When a message has an unknown role", func() {
			w := post(`{"conversation": [{"role": "user", "content": "hi"}, {"role": "bot", "content": "hello"}]}`)

			Convey("Then it should name the role rule and index", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var response errorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Message, ShouldEqual, "conversation[1]: role must be one of user, assistant, system")
			})
		})

		Convey("When a message has no content", func() {
			w := post(`{"conversation": [{"role": "user"}]}`)

			Convey("Then it should name the missing content", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var response errorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Message, ShouldEqual, "conversation[0]: missing content")
			})
		})

		Convey("When a message has null content", func() {
			w := post(`{"conversation": [{"role": "user", "content": null}]}`)

			Convey("Then it should name the missing content", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var response errorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Message, ShouldEqual, "conversation[0]: missing content")
			})
		})

		Convey("When content is not a string", func() {
			w := post(`{"conversation": [{"role": "user", "content": "ok"}, {"role": "assistant", "content": 7}]}`)

			Convey("Then it should name the string rule and index", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var response errorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Message, ShouldEqual, "conversation[1]: content must be a string")
			})
		})

		Convey("When the body is not valid JSON", func() {
			w := post(`{invalid json`)

			Convey("Then it should reject as a bad request", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var response errorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Code, ShouldEqual, "bad_request")
			})
		})

		Convey("When handling a non-POST request", func() {
			req := httptest.NewRequest("GET", "/analyze", nil)
			w := httptest.NewRecorder()
			handler.HandleAnalyze(w, req)

			Convey("Then it should return not found status", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestAnalyzeHandler_ContentLimit(t *testing.T) {
	Convey("Given an analyze handler with a small content limit", t, func() {
		analyzer := &mockAnalyzer{report: sampleReport()}
		handler := api.NewAnalyzeHandler(analyzer, 50, false)

		Convey("When content is exactly at the limit", func() {
			body := fmt.Sprintf(`{"conversation": [{"role": "user", "content": %q}]}`, strings.Repeat("a", 50))
			req := httptest.NewRequest("POST", "/analyze", strings.NewReader(body))
			w := httptest.NewRecorder()
			handler.HandleAnalyze(w, req)

			Convey("Then it should be accepted", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
			})
		})

		Convey("When content exceeds the limit", func() {
			body := fmt.Sprintf(`{"conversation": [{"role": "user", "content": %q}]}`, strings.Repeat("a", 51))
			req := httptest.NewRequest("POST", "/analyze", strings.NewReader(body))
			w := httptest.NewRecorder()
			handler.HandleAnalyze(w, req)

			Convey("Then it should reject naming the limit", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var response errorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Message, ShouldEqual, "conversation[0]: content exceeds 50 characters")
			})
		})

		Convey("When multibyte content is within the rune limit", func() {
			body := fmt.Sprintf(`{"conversation": [{"role": "user", "content": %q}]}`, strings.Repeat("é", 50))
			req := httptest.NewRequest("POST", "/analyze", strings.NewReader(body))
			w := httptest.NewRecorder()
			handler.HandleAnalyze(w, req)

			Convey("Then runes should be counted, not bytes", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
			})
		})
	})
}

func TestAnalyzeHandler_EngineErrors(t *testing.T) {
	Convey("Given an analyze handler whose engine fails", t, func() {
		Convey("When the engine rejects the conversation", func() {
			analyzer := &mockAnalyzer{err: fmt.Errorf("conversation[0]: missing role: %w", analysis.ErrInvalidConversation)}
			handler := api.NewAnalyzeHandler(analyzer, 0, false)

			req := httptest.NewRequest("POST", "/analyze", strings.NewReader(`{"conversation": [{"role": "user", "content": "hi"}]}`))
			w := httptest.NewRecorder()
			handler.HandleAnalyze(w, req)

			Convey("Then it should map to a validation error", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var response errorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Code, ShouldEqual, "validation_error")
			})
		})

		Convey("When the engine fails unexpectedly in development", func() {
			analyzer := &mockAnalyzer{err: errors.New("engine exploded")}
			handler := api.NewAnalyzeHandler(analyzer, 0, false)

			req := httptest.NewRequest("POST", "/analyze", strings.NewReader(`{"conversation": [{"role": "user", "content": "hi"}]}`))
			w := httptest.NewRecorder()
			handler.HandleAnalyze(w, req)

			Convey("Then the underlying error should be visible", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)

				var response errorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Message, ShouldContainSubstring, "engine exploded")
			})
		})

		Convey("When the engine fails unexpectedly in production", func() {
			analyzer := &mockAnalyzer{err: errors.New("engine exploded")}
			handler := api.NewAnalyzeHandler(analyzer, 0, true)

			req := httptest.NewRequest("POST", "/analyze", strings.NewReader(`{"conversation": [{"role": "user", "content": "hi"}]}`))
			w := httptest.NewRecorder()
			handler.HandleAnalyze(w, req)

			Convey("Then the error should be redacted", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)

				var response errorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Message, ShouldEqual, "internal server error")
			})
		})
	})
}

func TestDimensionsHandler_HandleDimensions(t *testing.T) {
	Convey("Given a dimensions handler", t, func() {
		catalog := &mockCatalog{
			dimensions: []types.DimensionInfo{
				{ID: "promptEngineering", Name: "Prompt Engineering", MaxScore: 25,
					SubCriteria: []types.SubCriterionInfo{{Name: "specificity", MaxScore: 6}}},
				{ID: "criticalThinking", Name: "Critical Thinking", MaxScore: 25},
			},
			bands: []types.LevelBand{
				{Level: "Novice", Min: 0, Max: 40},
				{Level: "Expert", Min: 86, Max: 100},
			},
		}
		handler := api.NewDimensionsHandler(catalog)

		Convey("When handling a GET request", func() {
			req := httptest.NewRequest("GET", "/dimensions", nil)
			w := httptest.NewRecorder()
			handler.HandleDimensions(w, req)

			Convey("Then it should return the catalog and level bands", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var response dimensionsResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(len(response.Dimensions), ShouldEqual, 2)
				So(response.Dimensions[0].ID, ShouldEqual, "promptEngineering")
				So(len(response.ProficiencyLevels), ShouldEqual, 2)
				So(response.ProficiencyLevels[1].Level, ShouldEqual, "Expert")
			})
		})

		Convey("When handling a non-GET request", func() {
			req := httptest.NewRequest("POST", "/dimensions", nil)
			w := httptest.NewRecorder()
			handler.HandleDimensions(w, req)

			Convey("Then it should return not found status", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestHealthHandler_HandleHealth(t *testing.T) {
	Convey("Given a health handler", t, func() {
		handler := api.NewHealthHandler("rubriq", "1.2.3", "abcdef1")

		Convey("When handling a health check request", func() {
			req := httptest.NewRequest("GET", "/healthz", nil)
			w := httptest.NewRecorder()
			handler.HandleHealth(w, req)

			Convey("Then it should return the service identity", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var response healthResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Status, ShouldEqual, "ok")
				So(response.Service, ShouldEqual, "rubriq")
				So(response.Version, ShouldEqual, "1.2.3")
				So(response.Commit, ShouldEqual, "abcdef1")
				So(response.GoVersion, ShouldStartWith, "go")
				So(response.Uptime, ShouldNotBeEmpty)
			})
		})

		Convey("When handling a non-GET request", func() {
			req := httptest.NewRequest("POST", "/healthz", nil)
			w := httptest.NewRecorder()
			handler.HandleHealth(w, req)

			Convey("Then it should return not found status", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestStatsHandler_HandleStats(t *testing.T) {
	Convey("Given a stats handler", t, func() {
		mockStats := &mockStatsProvider{
			stats: map[string]interface{}{
				"analysesRecorded": 1000,
				"averageScore":     72.5,
			},
		}
		handler := api.NewStatsHandler(mockStats)

		Convey("When handling stats request", func() {
			req := httptest.NewRequest("GET", "/stats", nil)
			w := httptest.NewRecorder()

			Convey("Then it should return stats", func() {
				handler.HandleStats(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)

				var response map[string]interface{}
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response["analysesRecorded"], ShouldEqual, 1000)
				So(response["averageScore"], ShouldEqual, 72.5)
			})
		})

		Convey("When handling a non-GET request", func() {
			req := httptest.NewRequest("POST", "/stats", nil)
			w := httptest.NewRecorder()
			handler.HandleStats(w, req)

			Convey("Then it should return not found status", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestMiddleware(t *testing.T) {
	Convey("Given the middleware stack", t, func() {
		Convey("When a handler panics", func() {
			boom := func(w http.ResponseWriter, r *http.Request) {
				panic("boom")
			}
			wrapped := api.RecoverMiddleware(boom)

			req := httptest.NewRequest("GET", "/panic", nil)
			w := httptest.NewRecorder()
			wrapped.ServeHTTP(w, req)

			Convey("Then the panic should become a 500 response", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)

				var response errorResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				So(err, ShouldBeNil)
				So(response.Code, ShouldEqual, "internal_error")
				So(response.Message, ShouldEqual, "internal server error")
			})
		})

		Convey("When a request carries no request ID", func() {
			var seen string
			next := func(w http.ResponseWriter, r *http.Request) {
				seen = w.Header().Get("X-Request-ID")
			}
			wrapped := api.RequestIDMiddleware(next)

			req := httptest.NewRequest("GET", "/", nil)
			w := httptest.NewRecorder()
			wrapped.ServeHTTP(w, req)

			Convey("Then a fresh identifier should be generated", func() {
				So(seen, ShouldStartWith, "req_")
				So(len(seen), ShouldEqual, 12)
			})
		})

		Convey("When a request carries a request ID", func() {
			next := func(w http.ResponseWriter, r *http.Request) {}
			wrapped := api.RequestIDMiddleware(next)

			req := httptest.NewRequest("GET", "/", nil)
			req.Header.Set("X-Request-ID", "req_existing")
			w := httptest.NewRecorder()
			wrapped.ServeHTTP(w, req)

			Convey("Then it should be preserved", func() {
				So(w.Header().Get("X-Request-ID"), ShouldEqual, "req_existing")
			})
		})

		Convey("When metrics middleware wraps a handler", func() {
			next := func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			}
			wrapped := api.MetricsMiddleware(next, "teapot")

			req := httptest.NewRequest("GET", "/teapot", nil)
			w := httptest.NewRecorder()
			wrapped.ServeHTTP(w, req)

			Convey("Then the status should pass through unchanged", func() {
				So(w.Code, ShouldEqual, http.StatusTeapot)
			})
		})
	})
}

// Mock dependencies that implements the Dependencies interface
type mockDependencies struct {
	analyzer *mockAnalyzer
	catalog  *mockCatalog
}

func (m *mockDependencies) Analyze(ctx context.Context, conv model.Conversation) (types.AnalysisReport, error) {
	return m.analyzer.Analyze(ctx, conv)
}

func (m *mockDependencies) Dimensions(ctx context.Context) []types.DimensionInfo {
	return m.catalog.Dimensions(ctx)
}

func (m *mockDependencies) LevelBands(ctx context.Context) []types.LevelBand {
	return m.catalog.LevelBands(ctx)
}

// Local types for testing
type analyzeResponse struct {
	Success      bool                 `json:"success"`
	UserID       string               `json:"userId"`
	Analysis     types.AnalysisReport `json:"analysis"`
	Metadata     json.RawMessage      `json:"metadata"`
	AnalysisTime string               `json:"analysisTime"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type notFoundResponse struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Operations []string `json:"operations"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"goVersion"`
	Uptime    string `json:"uptime"`
}

type dimensionsResponse struct {
	Dimensions        []types.DimensionInfo `json:"dimensions"`
	ProficiencyLevels []types.LevelBand     `json:"proficiencyLevels"`
}
