// Package submit delivers the completed result to the collection webhook.
// Delivery is best-effort: failures are logged and never surfaced to the
// user, whose locally-persisted result remains the source of truth.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"

	"github.com/nasigu/diagquiz/internal/store"
)

// DefaultURL is the fixed collection endpoint.
const DefaultURL = "https://n8n-nasigu.amvera.io/webhook/quiz-results"

// Client posts export snapshots to the webhook.
type Client struct {
	URL        string
	HTTPClient *http.Client
}

// NewClient creates a Client for the given endpoint ("" means DefaultURL).
func NewClient(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{URL: url, HTTPClient: http.DefaultClient}
}

// Send posts the snapshot. Any 2xx response is success; anything else is an
// error for the caller to log.
func (c *Client) Send(ctx context.Context, snap store.Snapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := ValidatePayload(body); err != nil {
		// Drift guard only; the endpoint accepts whatever arrives.
		fmt.Fprintln(os.Stderr, "quiz result payload:", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("post quiz result: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("post quiz result: unexpected status %s", resp.Status)
	}
	return nil
}

// SubmitAsync dispatches a detached delivery. It never blocks, retries, or
// reports back; a failure is logged to stderr.
func (c *Client) SubmitAsync(snap store.Snapshot) {
	go func() {
		if err := c.Send(context.Background(), snap); err != nil {
			fmt.Fprintln(os.Stderr, "send quiz results:", err)
		}
	}()
}
