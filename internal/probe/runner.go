package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rubriq/rubriq/pkg/logger"
)

// File permission constants.
const (
	directoryPermission   = 0750
	outcomeFilePermission = 0600
)

// Run executes the complete probe: health check, catalog fetch, submission,
// settle, stats fetch and verification.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting rubriq probe",
		logger.String("baseURL", config.BaseURL),
		logger.Int("conversations", config.NumConversations),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.String("logFile", config.LogFile),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Fetch the dimension catalog and tier bands
	catalog, err := fetchDimensions(ctx, config)
	if err != nil {
		return fmt.Errorf("catalog fetch failed: %w", err)
	}

	// Step 3: Generate submissions from the archetype templates
	subs := generateSubmissions(ctx, config, stats)

	// Step 4: Submit conversations concurrently
	outcomes, err := submitConversations(ctx, config, subs, stats)
	if err != nil {
		return fmt.Errorf("conversation submission failed: %w", err)
	}

	// Step 5: Wait for the usage recorders to drain
	logger.Get().Info(ctx, "waiting for outcomes to be recorded")
	time.Sleep(SettleDelay)

	// Step 6: Read the service's own tally
	if _, err := fetchServiceStats(ctx, config, stats); err != nil {
		return fmt.Errorf("stats fetch failed: %w", err)
	}

	// Step 7: Verify outcomes
	if err := verifyOutcomes(config, outcomes, catalog.ProficiencyLevels, stats); err != nil {
		return fmt.Errorf("outcome verification failed: %w", err)
	}

	// Step 8: Save outcomes to file
	if err := saveOutcomesToFile(ctx, config, outcomes); err != nil {
		logger.Get().Warn(ctx, "failed to save outcomes to file", logger.Error(err))
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "probe completed successfully")
	return nil
}

// checkServiceHealth confirms the service answers /healthz before the
// probe starts hammering it.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	if _, err := readResponseBody(resp); err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// saveOutcomesToFile dumps the collected outcomes as an indented JSON
// array for later inspection.
func saveOutcomesToFile(ctx context.Context, config *Config, outcomes []Outcome) error {
	if len(outcomes) == 0 {
		return fmt.Errorf("no outcomes to save")
	}

	filename := config.OutputFile
	if filename == "" {
		filename = "probe_outcomes_" + time.Now().Format("20060102_150405") + ".json"
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(outcomes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal outcomes: %w", err)
	}
	if err := os.WriteFile(filename, data, outcomeFilePermission); err != nil {
		return fmt.Errorf("failed to write outcomes: %w", err)
	}

	logger.Get().Info(ctx, "outcomes saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats prints the final probe statistics.
func displayFinalStats(stats *Stats) {
	var successRate, conversationsPerSecond float64

	if stats.Submitted > 0 {
		successRate = float64(stats.Successful) / float64(stats.Submitted) * PercentageMultiplier
	}

	if stats.Duration > 0 {
		conversationsPerSecond = float64(stats.Submitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("conversationsGenerated", stats.ConversationsGenerated),
		logger.Int("submitted", stats.Submitted),
		logger.Int("successful", stats.Successful),
		logger.Int("failed", stats.Failed),
		logger.Any("recordedByService", stats.RecordedByService),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("conversationsPerSecond", conversationsPerSecond))
}
