package patreon

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const (
	Service = "patreon"
	Version = 1
)

// ProfileResponse is the public user profile payload.
type ProfileResponse struct {
	Data struct {
		Attributes struct {
			Vanity   string `json:"vanity"`
			FullName string `json:"full_name"`
		} `json:"attributes"`
	} `json:"data"`
}

// Client resolves creator names via the legacy platform's public profile
// endpoint. The endpoint sits behind bot detection, so the HTTP client is
// injected: any client capable of passing that check works here.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// New creates a legacy profile client over the given HTTP client. A nil
// client falls back to a plain client with browser-like headers applied per
// request, which is enough outside of bot-check enforcement.
func New(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.With("source", Service),
	}
}

// CreatorName fetches the profile and returns the vanity handle, falling
// back to the full name.
func (c *Client) CreatorName(ctx context.Context, creatorID string) (string, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, creatorID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var profile ProfileResponse
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	name := profile.Data.Attributes.Vanity
	if name == "" {
		name = profile.Data.Attributes.FullName
	}
	if name == "" {
		return "", fmt.Errorf("profile for %s has no name", creatorID)
	}
	return name, nil
}
