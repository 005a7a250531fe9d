// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"runtime"
	"sync"
	"time"

	repository "github.com/rubriq/rubriq/internal/adapters/repository"
	outcomefeed "github.com/rubriq/rubriq/internal/adapters/usage/feed"
	recorderpool "github.com/rubriq/rubriq/internal/adapters/usage/recorder"
	"github.com/rubriq/rubriq/internal/domain/analysis"
	"github.com/rubriq/rubriq/internal/domain/model"
	"github.com/rubriq/rubriq/internal/domain/types"
	"github.com/rubriq/rubriq/pkg/logger"
	"github.com/rubriq/rubriq/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultFeedSize = 4096
)

// Service implements the API dependencies for the analysis system.
type Service struct {
	mu sync.RWMutex

	// Core components
	engine      *analysis.Engine
	tally       repository.Tally
	outcomeFeed outcomefeed.Feed
	recorders   *recorderpool.Pool

	// Configuration
	recorderCount int
	feedSize      int

	// State
	started   bool
	startedAt time.Time

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithRecorderCount sets the number of outcome recorder goroutines.
func WithRecorderCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.recorderCount = count
		}
	}
}

// WithFeedSize sets the maximum size of the outcome feed.
func WithFeedSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.feedSize = size
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithEngineOptions forwards options to the analysis engine.
func WithEngineOptions(opts ...analysis.Option) Option {
	return func(s *Service) {
		if len(opts) > 0 {
			s.engine = analysis.New(opts...)
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		engine:        analysis.New(),
		recorderCount: runtime.NumCPU(),
		feedSize:      defaultFeedSize,
		logger:        nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the usage recording pipeline.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting analysis service...")

	// Initialize components
	s.tally = repository.NewMemTally(ctx,
		repository.WithLevels(analysis.Levels()),
	)
	s.outcomeFeed = outcomefeed.NewInMemoryFeed(
		outcomefeed.WithCapacity(s.feedSize),
	)

	// Create and start the recorder pool draining the feed into the tally
	s.recorders = recorderpool.NewPool(s.recorderCount, s.outcomeFeed, s.tally)
	s.recorders.Start(ctx)

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "analysis service started",
		logger.Int("recorders", s.recorders.Size()),
		logger.Int("feedCapacity", s.feedSize),
		logger.Int("dimensions", len(s.engine.Catalog())),
	)

	return nil
}

// Stop gracefully shuts down the service, draining the outcome feed first.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping analysis service...")

	// Shutdown closes the feed and waits for recorders to drain it
	if s.recorders != nil {
		_ = s.recorders.Shutdown(ctx)
	}

	// Close the tally last so drained outcomes still land
	if closer, ok := s.tally.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	s.started = false
	s.logger.Info(ctx, "analysis service stopped")
}

// Analyze scores a conversation and records the outcome asynchronously.
// The returned report is complete; usage recording never blocks the caller.
func (s *Service) Analyze(ctx context.Context, conv model.Conversation) (types.AnalysisReport, error) {
	start := time.Now()
	report, err := s.engine.Analyze(ctx, conv)
	elapsed := time.Since(start)

	if err != nil {
		metrics.RecordAnalysisFailure()
		return types.AnalysisReport{}, err
	}

	metrics.RecordAnalysisCompleted()
	metrics.RecordAnalysisLatency(float64(elapsed.Milliseconds()))

	s.publishOutcome(ctx, report, elapsed)

	return report, nil
}

// publishOutcome hands the outcome to the usage feed, best effort.
func (s *Service) publishOutcome(ctx context.Context, report types.AnalysisReport, elapsed time.Duration) {
	s.mu.RLock()
	started := s.started
	f := s.outcomeFeed
	log := s.logger
	s.mu.RUnlock()

	if !started || f == nil {
		return
	}

	// Copy the dimension scores so the report and the outcome never share state
	dims := make(map[string]int, len(report.DimensionScores))
	for id, score := range report.DimensionScores {
		dims[id] = score
	}

	outcome := model.Outcome{
		OverallScore: report.OverallScore,
		Level:        report.ProficiencyLevel,
		Dimensions:   dims,
		Duration:     elapsed,
	}
	if !f.Publish(ctx, outcome) {
		log.Warn(ctx, "outcome dropped",
			logger.String("level", outcome.Level),
			logger.Int("overallScore", outcome.OverallScore),
		)
	}
}

// Dimensions returns the static dimension catalog.
func (s *Service) Dimensions(_ context.Context) []types.DimensionInfo {
	return s.engine.Catalog()
}

// LevelBands returns the proficiency levels with their score ranges.
func (s *Service) LevelBands(_ context.Context) []types.LevelBand {
	return analysis.LevelBands()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":       s.started,
		"recorderCount": s.recorderCount,
		"feedCapacity":  s.feedSize,
	}

	if s.started {
		summary := s.tally.Summary(ctx)
		stats["analysesRecorded"] = summary.Recorded
		stats["averageScore"] = summary.AverageScore
		stats["levelCounts"] = summary.LevelCounts
		stats["dimensionAverages"] = summary.DimensionAverages
		stats["feedLength"] = s.outcomeFeed.Len(ctx)
		stats["activeRecorders"] = s.recorders.Active()
		stats["uptimeSeconds"] = int64(time.Since(s.startedAt).Seconds())
	}

	return stats
}

// Recorded returns the number of outcomes folded into the tally so far.
func (s *Service) Recorded(ctx context.Context) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tally == nil {
		return 0
	}
	return s.tally.Count(ctx)
}
