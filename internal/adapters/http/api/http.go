// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rubriq/rubriq/internal/domain/model"
	"github.com/rubriq/rubriq/internal/domain/types"
)

// Defaults applied when ServerConfig fields are left zero.
const (
	defaultServiceName     = "rubriq"
	defaultMaxContentChars = 10000
)

// Analyzer runs the scoring engine against one conversation.
type Analyzer interface {
	Analyze(ctx context.Context, conv model.Conversation) (types.AnalysisReport, error)
}

// CatalogProvider exposes the static dimension catalog and level bands.
type CatalogProvider interface {
	Dimensions(ctx context.Context) []types.DimensionInfo
	LevelBands(ctx context.Context) []types.LevelBand
}

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Analyzer
	CatalogProvider
}

// ServerConfig carries handler settings resolved at bootstrap.
type ServerConfig struct {
	Service         string
	Version         string
	Commit          string
	MaxContentChars int
	Production      bool
}

// Server wires HTTP routes for the business API.
type Server struct {
	analyzeHandler    *AnalyzeHandler
	dimensionsHandler *DimensionsHandler
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	metricsHandler    *MetricsHandler
	notFoundHandler   *NotFoundHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, cfg ServerConfig) *Server {
	if cfg.Service == "" {
		cfg.Service = defaultServiceName
	}
	if cfg.MaxContentChars <= 0 {
		cfg.MaxContentChars = defaultMaxContentChars
	}
	return &Server{
		analyzeHandler:    NewAnalyzeHandler(deps, cfg.MaxContentChars, cfg.Production),
		dimensionsHandler: NewDimensionsHandler(deps),
		healthHandler:     NewHealthHandler(cfg.Service, cfg.Version, cfg.Commit),
		statsHandler:      NewStatsHandler(statsProvider),
		metricsHandler:    NewMetricsHandler(),
		notFoundHandler:   NewNotFoundHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", handlerChain(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", handlerChain(s.metricsHandler.HandleMetrics, "metrics"))
	mux.HandleFunc("/stats", handlerChain(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/analyze", handlerChain(s.analyzeHandler.HandleAnalyze, "analyze"))
	mux.HandleFunc("/dimensions", handlerChain(s.dimensionsHandler.HandleDimensions, "dimensions"))
	mux.HandleFunc("/", handlerChain(s.notFoundHandler.HandleNotFound, "root"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
