package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// HTTPClient is the probe's request client. Every request goes out with
// both the per-request context and the client-level timeout applied.
type HTTPClient struct {
	client *http.Client
}

// newHTTPClient builds a client whose requests give up after timeout.
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

// Get issues a context-bound GET.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post issues a context-bound POST with body encoded as JSON.
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	jsonData, err := marshalJSON(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

func marshalJSON(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func unmarshalJSON(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// readResponseBody drains the body and closes it; callers need no defer.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// submitConversations posts every submission concurrently using a worker
// pool and collects the per-conversation outcomes.
func submitConversations(ctx context.Context, config *Config, subs []submission, stats *Stats) ([]Outcome, error) {
	log.Printf("📤 Submitting %d conversations with %d workers...", len(subs), config.Workers)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/analyze"

	wantLevels := make(map[string]string)
	for _, tpl := range archetypes() {
		wantLevels[tpl.Name] = tpl.WantLevel
	}

	// Outcomes indexed by submission; failed slots keep a zero Outcome.
	outcomes := make([]Outcome, len(subs))
	var (
		successful int64
		failed     int64
		submitted  int64
		lastReport int64 // unix nanos of the last progress line
	)
	reportInterval := 1 * time.Second

	// Create worker pool
	indexChan := make(chan int, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			for index := range indexChan {
				select {
				case <-ctx.Done():
					return
				default:
					sub := subs[index]
					outcome, err := submitSingleConversation(ctx, client, url, sub)

					atomic.AddInt64(&submitted, 1)
					if err != nil {
						atomic.AddInt64(&failed, 1)
						if config.Verbose {
							log.Printf("⚠️  Failed to analyze %s conversation: %v", sub.Archetype, err)
						}
					} else {
						outcome.WantLevel = wantLevels[sub.Archetype]
						outcomes[index] = outcome
						atomic.AddInt64(&successful, 1)
					}

					// Progress reporting
					now := time.Now().UnixNano()
					last := atomic.LoadInt64(&lastReport)
					if now-last >= int64(reportInterval) && atomic.CompareAndSwapInt64(&lastReport, last, now) {
						total := atomic.LoadInt64(&submitted)
						succ := atomic.LoadInt64(&successful)
						fail := atomic.LoadInt64(&failed)

						if config.Verbose {
							log.Printf("📊 Progress: %d/%d submitted (success: %d, failed: %d)",
								total, len(subs), succ, fail)
						} else {
							fmt.Printf("\r📤 Submitted: %d/%d (success: %d, failed: %d)",
								total, len(subs), succ, fail)
						}
					}
				}
			}
		}(i)
	}

	// Send submission indices to workers
	go func() {
		defer close(indexChan)
		for i := range subs {
			select {
			case <-ctx.Done():
				return
			case indexChan <- i:
			}
		}
	}()

	// Wait for all workers to complete
	wg.Wait()

	// Final progress report
	if !config.Verbose {
		fmt.Println() // New line after progress indicator
	}

	// Update stats
	stats.Submitted = int(atomic.LoadInt64(&submitted))
	stats.Successful = int(atomic.LoadInt64(&successful))
	stats.Failed = int(atomic.LoadInt64(&failed))

	log.Printf(`✅ Conversation submission completed:
   Successful: %d
   Failed: %d
`, stats.Successful, stats.Failed)

	// Drop the zero slots left by failed submissions.
	valid := make([]Outcome, 0, len(outcomes))
	for _, o := range outcomes {
		if o.UserID != "" {
			valid = append(valid, o)
		}
	}

	return valid, nil
}

// submitSingleConversation posts one conversation and decodes the verdict.
func submitSingleConversation(ctx context.Context, client *HTTPClient, url string, sub submission) (Outcome, error) {
	resp, err := client.Post(ctx, url, analyzeRequest{
		Conversation: sub.Messages,
		UserID:       sub.UserID,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("request failed: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != StatusOK {
		return Outcome{}, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	var envelope analyzeResponse
	if err := unmarshalJSON(body, &envelope); err != nil {
		return Outcome{}, fmt.Errorf("failed to parse response: %w", err)
	}
	if !envelope.Success {
		return Outcome{}, fmt.Errorf("analysis not successful: %s", string(body))
	}

	return Outcome{
		Archetype: sub.Archetype,
		UserID:    envelope.UserID,
		Score:     envelope.Analysis.OverallScore,
		Level:     envelope.Analysis.ProficiencyLevel,
	}, nil
}
