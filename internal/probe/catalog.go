package probe

import (
	"context"
	"fmt"
	"log"
)

// fetchDimensions retrieves the scoring catalog and tier bands.
func fetchDimensions(ctx context.Context, config *Config) (dimensionsPayload, error) {
	log.Printf("📐 Fetching the dimension catalog...")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/dimensions"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return dimensionsPayload{}, fmt.Errorf("request failed: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return dimensionsPayload{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != StatusOK {
		return dimensionsPayload{}, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	var payload dimensionsPayload
	if err := unmarshalJSON(body, &payload); err != nil {
		return dimensionsPayload{}, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(payload.Dimensions) == 0 || len(payload.ProficiencyLevels) == 0 {
		return dimensionsPayload{}, fmt.Errorf("catalog is incomplete: %d dimensions, %d levels",
			len(payload.Dimensions), len(payload.ProficiencyLevels))
	}

	log.Printf("✅ Catalog: %d dimensions, %d proficiency levels",
		len(payload.Dimensions), len(payload.ProficiencyLevels))

	return payload, nil
}

// fetchServiceStats reads the service's usage snapshot and records how many
// analyses the service itself has folded into its tally.
func fetchServiceStats(ctx context.Context, config *Config, stats *Stats) (map[string]interface{}, error) {
	log.Printf("📈 Fetching service stats...")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/stats"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	var snapshot map[string]interface{}
	if err := unmarshalJSON(body, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	// JSON numbers decode as float64; analysesRecorded is an integer count.
	if recorded, ok := snapshot["analysesRecorded"].(float64); ok {
		stats.RecordedByService = int64(recorded)
	}

	log.Printf("✅ Service reports %d analyses recorded", stats.RecordedByService)

	return snapshot, nil
}
