package moderation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// FlagQuery identifies the entity being checked for moderation flags.
type FlagQuery struct {
	Service  string `json:"service"`
	Entity   string `json:"entity"`
	EntityID string `json:"entityId"`
	ID       string `json:"id"`
}

// Client notifies the moderation collaborator about each non-banned post.
// The call is fire-and-forget: the outcome never gates ingestion.
type Client struct {
	httpClient *http.Client
	endpoint   string
	logger     *slog.Logger
}

func New(endpoint string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		endpoint:   endpoint,
		logger:     logger.With("component", "moderation"),
	}
}

// CheckForFlags posts the query to the moderation endpoint. A blank
// endpoint disables the collaborator.
func (c *Client) CheckForFlags(ctx context.Context, q FlagQuery) error {
	if c.endpoint == "" {
		return nil
	}

	body, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("marshal flag query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return nil
}
