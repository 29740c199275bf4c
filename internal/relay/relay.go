// Package relay posts human-readable order notifications to the external
// form relay. Deliveries are write-once and best-effort: callers on a
// critical path log and swallow the error instead of propagating it.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Notification is one relay delivery. Fields are mirrored as discrete
// top-level JSON keys next to the formatted message.
type Notification struct {
	Subject string
	Message string
	Fields  map[string]string
}

type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send posts the notification as JSON. Any non-2xx response is an error;
// no retry is attempted here.
func (c *Client) Send(ctx context.Context, n Notification) error {
	body := map[string]string{
		"_subject": n.Subject,
		"message":  n.Message,
	}
	for k, v := range n.Fields {
		if _, reserved := body[k]; !reserved {
			body[k] = v
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("relay returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
